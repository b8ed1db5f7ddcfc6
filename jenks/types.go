package jenks

// ValuePair is one distinct input value together with its occurrence count.
// Sequences handed to BreaksFromPairs must be strictly ascending by Value and
// carry Count > 0; ValuePairs produces such a sequence from raw values.
type ValuePair struct {
	Value float64
	Count int
}

// Class summarizes one class of a classification.
//
// Fields:
//   - Lower — the class break (smallest value in the class).
//   - Upper — the largest value in the class.
//   - Count — total weight of the class.
//   - Mean  — weighted mean of the class.
//   - SSD   — weighted sum of squared deviations from Mean.
type Class struct {
	Lower float64 `json:"lower" yaml:"lower"`
	Upper float64 `json:"upper" yaml:"upper"`
	Count int     `json:"count" yaml:"count"`
	Mean  float64 `json:"mean" yaml:"mean"`
	SSD   float64 `json:"ssd" yaml:"ssd"`
}

// Evaluation reports how well a set of breaks fits the data.
//
//   - SDAM — squared deviations of all values from the array mean.
//   - SDCM — squared deviations of values from their class means (Σ Class.SSD).
//   - GVF  — goodness of variance fit, 1 - SDCM/SDAM; 1 is a perfect fit.
type Evaluation struct {
	Classes []Class `json:"classes" yaml:"classes"`
	SDAM    float64 `json:"sdam" yaml:"sdam"`
	SDCM    float64 `json:"sdcm" yaml:"sdcm"`
	GVF     float64 `json:"gvf" yaml:"gvf"`
}

// Classification is the result of Classify: the breaks and their evaluation.
type Classification struct {
	Breaks     []float64 `json:"breaks" yaml:"breaks"`
	Evaluation `yaml:",inline"`
}
