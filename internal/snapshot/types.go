package snapshot

// #region stat

// Stat identifies one trainable stat and, on a support card, the training
// type the card boosts.
type Stat string

const (
	StatSpeed   Stat = "spd"
	StatStamina Stat = "sta"
	StatPower   Stat = "pwr"
	StatGuts    Stat = "guts"
	StatWit     Stat = "wit"
)

// AllStats is the fixed observation order of the training menu.
var AllStats = []Stat{StatSpeed, StatStamina, StatPower, StatGuts, StatWit}

// #endregion

// #region mood

// Mood is the ordinal wellbeing reading from the lobby header.
type Mood string

const (
	MoodUnknown Mood = "UNKNOWN"
	MoodAwful   Mood = "AWFUL"
	MoodBad     Mood = "BAD"
	MoodNormal  Mood = "NORMAL"
	MoodGood    Mood = "GOOD"
	MoodGreat   Mood = "GREAT"
)

// moodRank orders moods ascending. UNKNOWN compares lowest so a misread
// mood never passes the minimum-mood gate.
var moodRank = map[Mood]int{
	MoodUnknown: 0,
	MoodAwful:   1,
	MoodBad:     2,
	MoodNormal:  3,
	MoodGood:    4,
	MoodGreat:   5,
}

// AtLeast reports whether m is at or above min on the mood ladder.
func (m Mood) AtLeast(min Mood) bool {
	return moodRank[m] >= moodRank[min]
}

// Known reports whether the mood reading resolved to a real level.
func (m Mood) Known() bool {
	_, ok := moodRank[m]
	return ok && m != MoodUnknown
}

// #endregion

// #region phase

// Phase classifies what the current screen is asking for.
type Phase string

const (
	PhaseTraining    Phase = "training"
	PhaseRaceDay     Phase = "race_day"
	PhaseEvent       Phase = "event"
	PhaseSkillShop   Phase = "skill_shop"
	PhaseClawMachine Phase = "claw_machine"
	PhaseUnknown     Phase = "unknown"
)

// #endregion

// #region calendar

// Year is the career stage read from the calendar banner.
type Year string

const (
	YearJunior  Year = "junior"
	YearClassic Year = "classic"
	YearSenior  Year = "senior"
)

// Calendar locates the turn within the career.
type Calendar struct {
	Year  Year
	Month int // 1-12
}

// Summer reports whether the month falls in the July/August break, when no
// races are offered.
func (c Calendar) Summer() bool {
	return c.Month == 7 || c.Month == 8
}

// #endregion

// #region training-option

// FailureUnknown marks a failure reading the perception side could not OCR.
const FailureUnknown = -1

// SupportCard is one observed support card under a training option.
type SupportCard struct {
	Type      Stat
	BondLevel int // 0-5, 0 when unreadable
	HasHint   bool
}

// TrainingOption is one column of the training menu.
type TrainingOption struct {
	Stat           Stat
	CurrentValue   int
	FailurePercent int // FailureUnknown when unreadable
	Supports       []SupportCard
}

// Rainbow reports whether the card's boosted stat matches the option it
// appears under.
func (c SupportCard) Rainbow(under Stat) bool {
	return c.Type == under
}

// #endregion

// #region race

// RaceGrade is the badge on a race card.
type RaceGrade string

const (
	GradeG1    RaceGrade = "G1"
	GradeG2    RaceGrade = "G2"
	GradeG3    RaceGrade = "G3"
	GradeOther RaceGrade = "OP"
)

// gradeRank orders grades descending prestige.
var gradeRank = map[RaceGrade]int{
	GradeG1:    3,
	GradeG2:    2,
	GradeG3:    1,
	GradeOther: 0,
}

// Rank returns the grade's prestige rank; higher is better.
func (g RaceGrade) Rank() int { return gradeRank[g] }

// RaceCandidate is one entry of the race list, in declared order.
type RaceCandidate struct {
	Name          string
	Grade         RaceGrade
	AptitudeMatch bool
	Trophied      bool
	Month         int
}

// #endregion

// #region event

// EventChoice is one selectable option of a narrative event.
// Position 0 is the topmost option on screen.
type EventChoice struct {
	Position int
	Outcomes []string // outcome phrases read from the event database or OCR
}

// #endregion

// #region skill

// SkillCandidate is one purchasable entry of the skill shop.
type SkillCandidate struct {
	Name string
	Cost int
	Gold bool
}

// #endregion

// #region goal

// Goal is the career goal reading from the lobby banner. RequiresRacing is
// set when the unmet goal counts race results (fan targets, G1 wins), which
// makes racing outrank training until it is met.
type Goal struct {
	RequiresRacing bool
	Met            bool
}

// Urgent reports whether the goal should force race turns.
func (g Goal) Urgent() bool {
	return g.RequiresRacing && !g.Met
}

// #endregion

// #region snapshot

// Snapshot is one immutable structured observation of the screen. It is
// owned by the turn that captured it and discarded once the decision for
// that turn is emitted.
type Snapshot struct {
	Phase         Phase
	Mood          Mood
	EnergyPercent int
	Calendar      Calendar
	Training      []TrainingOption
	Races         []RaceCandidate
	EventChoices  []EventChoice
	SkillPoints   int
	Skills        []SkillCandidate

	// Debuffed is set when a status debuff icon is visible; the infirmary
	// clears it and outranks every other lobby action.
	Debuffed bool
	Goal     Goal
}

// #endregion
