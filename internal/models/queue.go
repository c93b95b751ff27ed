package models

// Attraction operating statuses as reported by the live-data API.
const (
	StatusOperating     = "OPERATING"
	StatusDown          = "DOWN"
	StatusClosed        = "CLOSED"
	StatusRefurbishment = "REFURBISHMENT"
)

// Queue is the union-shaped wait state of an attraction. Only the sections
// relevant to the queue's type are populated; the rest stay nil and are
// omitted from JSON.
type Queue struct {
	Standby        *WaitQueue          `json:"STANDBY,omitempty"`
	SingleRider    *WaitQueue          `json:"SINGLE_RIDER,omitempty"`
	ReturnTime     *ReturnTimeQueue    `json:"RETURN_TIME,omitempty"`
	PaidReturnTime *ReturnTimeQueue    `json:"PAID_RETURN_TIME,omitempty"`
	BoardingGroup  *BoardingGroupQueue `json:"BOARDING_GROUP,omitempty"`
}

type WaitQueue struct {
	WaitTime *int `json:"waitTime"`
}

type ReturnTimeQueue struct {
	State       string  `json:"state,omitempty"`
	ReturnStart *string `json:"returnStart"`
	ReturnEnd   *string `json:"returnEnd"`
}

type BoardingGroupQueue struct {
	AllocationStatus  string  `json:"allocationStatus,omitempty"`
	CurrentGroupStart *string `json:"currentGroupStart"`
	CurrentGroupEnd   *string `json:"currentGroupEnd"`
	EstimatedWait     *int    `json:"estimatedWait"`
}
