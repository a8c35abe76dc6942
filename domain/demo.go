package domain

// DemoPatient is the fixed patient shown by the anatomy demo. It is not
// medical data.
type DemoPatient struct {
	ID        string `json:"id"`
	FullName  string `json:"fullName"`
	Age       int    `json:"age"`
	Diagnosis string `json:"diagnosis"`
	Note      string `json:"note,omitempty"`
}

type HeartPartInfo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// HeartInfoMap is keyed by heart part id, e.g. "leftVentricle".
type HeartInfoMap map[string]HeartPartInfo
