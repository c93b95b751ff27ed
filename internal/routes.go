package internal

import (
	"net/http"

	"parkpulse/internal/controllers"
	"parkpulse/internal/providers"
	"parkpulse/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/destinations", http.HandlerFunc(apiController.GetDestinations))
	routers.Get("/destination", http.HandlerFunc(apiController.GetDestination))
	routers.Get("/user", http.HandlerFunc(apiController.GetUser))
	routers.Post("/user/create", http.HandlerFunc(apiController.CreateUser))
	routers.Post("/user/update", http.HandlerFunc(apiController.UpdateUser))
	routers.Post("/user/favorite", http.HandlerFunc(apiController.AddFavorite))
	routers.Post("/user/unfavorite", http.HandlerFunc(apiController.RemoveFavorite))
	return routers
}
