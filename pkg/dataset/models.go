package dataset

// Observation is a single trip record at one stop, joined with the segment to the next stop.
type Observation struct {
	Line     string `csv:"linie" bson:"linie" json:"line"`
	Route    string `csv:"fw_lang" bson:"fw_lang" json:"route"`
	Stop     string `csv:"halt_kurz" bson:"halt_kurz" json:"stop"`
	StopName string `csv:"halt_lang" bson:"halt_lang" json:"stop_name"`

	From string `csv:"halt_kurz_von1" bson:"halt_kurz_von1" json:"from"`
	To   string `csv:"halt_kurz_nach1" bson:"halt_kurz_nach1" json:"to"`

	HoldupStop           float64 `csv:"holdup_stop" bson:"holdup_stop" json:"holdup_stop"`
	HoldupTrajectory     float64 `csv:"holdup_trajectory" bson:"holdup_trajectory" json:"holdup_trajectory"`
	TotalHoldup          float64 `csv:"total_holdup" bson:"total_holdup" json:"total_holdup"`
	DelayAfterTrajectory float64 `csv:"delay_after_trajectory" bson:"delay_after_trajectory" json:"delay_after_trajectory"`
}

// StopRecord is a row of the stop metadata file (haltestelle.csv)
type StopRecord struct {
	Code string `csv:"halt_kurz" bson:"halt_kurz" json:"code"`
	Name string `csv:"halt_lang" bson:"halt_lang" json:"name"`
}
