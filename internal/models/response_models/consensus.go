package response_models

type ConsensusActivity struct {
	Time        string `json:"time"`
	Activity    string `json:"activity"`
	Description string `json:"description"`
}

// ConsensusResult is the final shared-plan summary produced at the end of
// the quiz flow. All fields are required; Activities must be non-empty with
// every entry fully populated, otherwise the value is rejected and the
// fallback itinerary is used instead.
type ConsensusResult struct {
	Title              string              `json:"title"`
	TimeSchedule       string              `json:"time_schedule"`
	Transportation     string              `json:"transportation"`
	Accommodation      string              `json:"accommodation"`
	CoreObjective      string              `json:"core_objective"`
	Activities         []ConsensusActivity `json:"activities"`
	RhythmConsensus    string              `json:"rhythm_consensus"`
	WeatherContingency string              `json:"weather_contingency"`
	Remarks            string              `json:"remarks"`
	Reasoning          string              `json:"reasoning"`
}
