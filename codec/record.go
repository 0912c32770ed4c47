package codec

// ScalarRecord is the wire form of a single quantity. Named quantities carry
// Unit; generic quantities carry Dimensions and their value is in standard
// units.
type ScalarRecord struct {
	Value      float64 `json:"value"`
	Unit       string  `json:"unit,omitempty"`
	Kind       string  `json:"kind,omitempty"`
	Dimensions string  `json:"dimensions,omitempty"`
	Absolute   bool    `json:"absolute,omitempty"`
}

// ArrayRecord is the wire form of a vector or matrix. Values are row-major in
// the display unit.
type ArrayRecord struct {
	Kind    string    `json:"kind,omitempty"`
	Unit    string    `json:"unit"`
	Storage string    `json:"storage"`
	Rows    int       `json:"rows"`
	Cols    int       `json:"cols"`
	Values  []float64 `json:"values"`
}
