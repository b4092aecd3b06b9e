package scoring

// CriterionID identifies one of the five fixed venue criteria.
type CriterionID string

const (
	CriterionPrice      CriterionID = "harga"
	CriterionDistance   CriterionID = "jarak"
	CriterionLighting   CriterionID = "pencahayaan"
	CriterionFacilities CriterionID = "fasilitas"
	CriterionComfort    CriterionID = "kenyamanan"
)

// AllCriteria returns every criterion in canonical order.
func AllCriteria() []CriterionID {
	return []CriterionID{
		CriterionPrice,
		CriterionDistance,
		CriterionLighting,
		CriterionFacilities,
		CriterionComfort,
	}
}

// Valid reports whether id is one of the known criteria.
func (id CriterionID) Valid() bool {
	switch id {
	case CriterionPrice, CriterionDistance, CriterionLighting, CriterionFacilities, CriterionComfort:
		return true
	}
	return false
}

// DefaultDirection returns the catalog direction for id.
// Price and distance are cost criteria; everything else is benefit.
func (id CriterionID) DefaultDirection() Direction {
	switch id {
	case CriterionPrice, CriterionDistance:
		return Cost
	default:
		return Benefit
	}
}

// Direction says whether higher or lower raw values are preferable.
type Direction string

const (
	Benefit Direction = "benefit"
	Cost    Direction = "cost"
)

func (d Direction) Valid() bool {
	return d == Benefit || d == Cost
}

// Criterion is a weighted criterion as supplied to the engine.
type Criterion struct {
	ID        CriterionID `json:"id"`
	Direction Direction   `json:"direction"`
	Weight    float64     `json:"weight"`
}

// CriterionInfo is display metadata for a criterion.
type CriterionInfo struct {
	ID          CriterionID `json:"id"`
	Label       string      `json:"label"`
	Unit        string      `json:"unit"`
	Description string      `json:"description"`
	Direction   Direction   `json:"direction"`
}

// Catalog returns display metadata for every criterion in canonical order.
func Catalog() []CriterionInfo {
	return []CriterionInfo{
		{ID: CriterionPrice, Label: "Harga", Unit: "Rp/jam", Description: "biaya sewa lapangan", Direction: Cost},
		{ID: CriterionDistance, Label: "Jarak", Unit: "km", Description: "jarak dari lokasi Anda", Direction: Cost},
		{ID: CriterionLighting, Label: "Pencahayaan", Unit: "1-10", Description: "kualitas pencahayaan lapangan", Direction: Benefit},
		{ID: CriterionFacilities, Label: "Fasilitas", Unit: "1-10", Description: "kelengkapan fasilitas", Direction: Benefit},
		{ID: CriterionComfort, Label: "Kenyamanan", Unit: "1-10", Description: "tingkat kenyamanan", Direction: Benefit},
	}
}

// Alternative is a candidate venue with one raw value per criterion.
type Alternative struct {
	ID     string                  `json:"id"`
	Name   string                  `json:"name"`
	Values map[CriterionID]float64 `json:"values"`
}

// ValueSet holds one raw value per criterion. Use it instead of a bare map
// when building alternatives in Go so that no criterion can be left out.
type ValueSet struct {
	Price      float64
	Distance   float64
	Lighting   float64
	Facilities float64
	Comfort    float64
}

// Map converts the set to the engine's map form.
func (v ValueSet) Map() map[CriterionID]float64 {
	return map[CriterionID]float64{
		CriterionPrice:      v.Price,
		CriterionDistance:   v.Distance,
		CriterionLighting:   v.Lighting,
		CriterionFacilities: v.Facilities,
		CriterionComfort:    v.Comfort,
	}
}

// NewAlternative builds an Alternative from a complete ValueSet.
func NewAlternative(id, name string, v ValueSet) Alternative {
	return Alternative{ID: id, Name: name, Values: v.Map()}
}
