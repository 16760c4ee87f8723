package notice

// FieldSet maps each of the profile's field labels to its sliced value.
// SliceByLabelPositions always returns all labels as keys, possibly empty.
type FieldSet map[string]string

// Entry is one parsed construction-permit announcement. The JSON keys are
// the published output schema and must not change.
type Entry struct {
	Bauherrschaft string `json:"Bauherrschaft"`
	Bauvorhaben   string `json:"Bauvorhaben"`
	Lage          string `json:"Lage"`
	Zone          string `json:"Zone"`
	Zusatzgesuch  string `json:"Zusatzgesuch"`
	Others        string `json:"others"`
}

// Field label names of the Würenlos notice format.
const (
	labelApplicant    = "Bauherrschaft"
	labelProject      = "Bauvorhaben"
	labelLocation     = "Lage"
	labelZone         = "Zone"
	labelSupplemental = "Zusatzgesuch"
)
