package entities

// Category separates red and blue counts so equal values never collide
type Category string

const (
	CategoryRed  Category = "red"
	CategoryBlue Category = "blue"
)

// TopStatsLimit is the number of entries kept by the frequency ranking
const TopStatsLimit = 15

// NumberStat is a derived frequency record for one number in one category
type NumberStat struct {
	Number   int      `json:"number"`
	Count    int      `json:"count"`
	Category Category `json:"category"`
}

// Label returns the two-digit number used on chart axes
func (s NumberStat) Label() string {
	return FormatNumber(s.Number)
}
