package store

// Record is one dataset row as it comes out of a relational source, before
// validation and mapping into the domain model.
type Record struct {
	Year              int
	Country           string
	Industry          string
	TopAITool         string
	RegulationStatus  string
	AdoptionRate      float64
	JobLossRate       float64
	RevenueIncrease   float64
	CollaborationRate float64
}
