package snapshot

import "testing"

func TestMoodLadder(t *testing.T) {
	if !MoodGreat.AtLeast(MoodGood) {
		t.Fatal("GREAT >= GOOD")
	}
	if MoodNormal.AtLeast(MoodGood) {
		t.Fatal("NORMAL < GOOD")
	}
	if MoodGood.AtLeast(MoodGood) != true {
		t.Fatal("GOOD >= GOOD")
	}
}

func TestUnknownMoodComparesLowest(t *testing.T) {
	if MoodUnknown.AtLeast(MoodAwful) {
		t.Fatal("UNKNOWN must sit below AWFUL")
	}
	if MoodUnknown.Known() {
		t.Fatal("UNKNOWN is not a known reading")
	}
	if !MoodAwful.Known() {
		t.Fatal("AWFUL is a known reading")
	}
}

func TestCalendarSummer(t *testing.T) {
	for month := 1; month <= 12; month++ {
		c := Calendar{Year: YearClassic, Month: month}
		want := month == 7 || month == 8
		if c.Summer() != want {
			t.Fatalf("month %d: summer = %v, want %v", month, c.Summer(), want)
		}
	}
}

func TestRainbowMatchesBoostedStat(t *testing.T) {
	card := SupportCard{Type: StatSpeed, BondLevel: 5}
	if !card.Rainbow(StatSpeed) {
		t.Fatal("speed card under speed training is rainbow")
	}
	if card.Rainbow(StatPower) {
		t.Fatal("speed card under power training is not rainbow")
	}
}

func TestGradeRankOrdering(t *testing.T) {
	if GradeG1.Rank() <= GradeG2.Rank() {
		t.Fatal("G1 outranks G2")
	}
	if GradeG2.Rank() <= GradeG3.Rank() {
		t.Fatal("G2 outranks G3")
	}
	if GradeG3.Rank() <= GradeOther.Rank() {
		t.Fatal("G3 outranks OP")
	}
}
