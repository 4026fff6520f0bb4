package hsr

// Element 角色属性，用于限定页面上带属性后缀的 class
type Element string

const (
	ElementUnknown   Element = ""
	ElementPhysical  Element = "Physical"
	ElementLightning Element = "Lightning"
	ElementFire      Element = "Fire"
	ElementImaginary Element = "Imaginary"
	ElementIce       Element = "Ice"
	ElementWind      Element = "Wind"
	ElementQuantum   Element = "Quantum"
)

// Elements is the fixed enumeration order, also used to break ties.
var Elements = []Element{
	ElementPhysical,
	ElementLightning,
	ElementFire,
	ElementImaginary,
	ElementIce,
	ElementWind,
	ElementQuantum,
}

func (e Element) String() string {
	if e == ElementUnknown {
		return "unknown"
	}
	return string(e)
}

type Kind string

const (
	KindRange Kind = "range"
	KindFixed Kind = "fixed"
	KindText  Kind = "text"
)

// Characteristic 一行 "label: value" 的解码结果
type Characteristic struct {
	Label string        `json:"label"`
	Kind  Kind          `json:"kind"`
	Range *ValueRange   `json:"range,omitempty"`
	Fixed []Alternative `json:"fixed,omitempty"`
	Text  string        `json:"text,omitempty"`
	Raw   string        `json:"raw"`
}

type ValueRange struct {
	Min        float64  `json:"min"`
	Max        *float64 `json:"max,omitempty"`
	MinComment string   `json:"min_comment,omitempty"`
	MaxComment string   `json:"max_comment,omitempty"`
	Percent    bool     `json:"percent,omitempty"`
	Plus       bool     `json:"plus"`
	// Condition holds the leading phrase of the speed-tuning idioms.
	Condition string `json:"condition,omitempty"`
}

type Alternative struct {
	Value   string `json:"value"`
	Comment string `json:"comment,omitempty"`
}

type LightCone struct {
	Name            string   `json:"name"`
	Percentage      *float64 `json:"percentage,omitempty"`
	Rarity          int      `json:"rarity,omitempty"`
	Superimposition *int     `json:"superimposition,omitempty"`
	Description     string   `json:"description"`
}

type Relic struct {
	Name       string   `json:"name"`
	Percentage *float64 `json:"percentage,omitempty"`
	TwoPiece   string   `json:"two_piece"`
	FourPiece  string   `json:"four_piece"`
	Flex       bool     `json:"flex"`
	Note       string   `json:"note"`
}

type PlanarSet struct {
	Name       string   `json:"name"`
	Percentage *float64 `json:"percentage,omitempty"`
	TwoPiece   string   `json:"two_piece"`
	Note       string   `json:"note"`
}

// PlanarNotes 只保留 "Best Planetary Sets" 区块末尾的补充说明
type PlanarNotes struct {
	Text string `json:"text"`
	List string `json:"list"`
}

// Priority is an ordered list of tiers; names inside a tier share a rank.
type Priority [][]string

type SlotStats struct {
	Slot  string   `json:"slot"`
	Stats []string `json:"stats"`
	Tiers Priority `json:"tiers"`
}

type MainStats []SlotStats

// Lookup returns the stats listed for slot, in priority order.
func (m MainStats) Lookup(slot string) ([]string, bool) {
	for _, s := range m {
		if s.Slot == slot {
			return s.Stats, true
		}
	}
	return nil, false
}

type TracesPriority struct {
	Skills      Priority `json:"skills"`
	MajorTraces Priority `json:"major_traces"`
}

type Team struct {
	Rank      *int     `json:"rank,omitempty"`
	Usage     *float64 `json:"usage,omitempty"`
	AvgRounds *float64 `json:"avg_rounds,omitempty"`
	Members   []string `json:"members"`
}

// CharacterBuild 单个角色的完整构筑记录，由 Extractor 一次性生成
type CharacterBuild struct {
	Character        string           `json:"character"`
	Element          Element          `json:"element"`
	LightCones       []LightCone      `json:"light_cones"`
	Relics           []Relic          `json:"relics"`
	PlanarSets       []PlanarSet      `json:"planar_sets"`
	PlanarNotes      PlanarNotes      `json:"planar_notes"`
	MainStats        MainStats        `json:"main_stats"`
	Substats         Priority         `json:"substats"`
	SubstatsText     string           `json:"substats_text"`
	StatDetailsText  string           `json:"stat_details_text"`
	StatCommentsText string           `json:"stat_comments_text"`
	EndgameStats     []Characteristic `json:"endgame_stats"`
	Traces           TracesPriority   `json:"traces"`
	Synergy          []string         `json:"synergy"`
	Teams            []Team           `json:"teams"`
}

// SectionStatus 是否在页面上找到了某个区块
type SectionStatus struct {
	Name  string
	Found bool
}

// Sections summarises which sections carried data.
func (b *CharacterBuild) Sections() []SectionStatus {
	return []SectionStatus{
		{"Element", b.Element != ElementUnknown},
		{"Best Light Cones", len(b.LightCones) > 0},
		{"Best Relic Sets", len(b.Relics) > 0},
		{"Planetary Sets", len(b.PlanarSets) > 0},
		{"Main Stats", len(b.MainStats) > 0},
		{"Substats", len(b.Substats) > 0},
		{"Recommended endgame stats", len(b.EndgameStats) > 0},
		{"Traces priority", len(b.Traces.Skills) > 0 || len(b.Traces.MajorTraces) > 0},
		{"Synergy", len(b.Synergy) > 0},
		{"Teams (MoC)", len(b.Teams) > 0},
	}
}

func newBuild(character string, el Element) *CharacterBuild {
	return &CharacterBuild{
		Character:    character,
		Element:      el,
		LightCones:   []LightCone{},
		Relics:       []Relic{},
		PlanarSets:   []PlanarSet{},
		MainStats:    MainStats{},
		Substats:     Priority{},
		EndgameStats: []Characteristic{},
		Traces:       TracesPriority{Skills: Priority{}, MajorTraces: Priority{}},
		Synergy:      []string{},
		Teams:        []Team{},
	}
}
