package interfaces

type SchedulerInterface interface {
	Init()
	Stop()
	RunOnce()
}
