package model

import "fmt"

// ShotType is the scoring category of a shot.
type ShotType uint8

const (
	ShotTypeUnknown ShotType = iota
	TwoPoint
	ThreePoint
	FreeThrow
)

var shotTypeNames = [...]string{"", "2PT", "3PT", "FT"}

func (t ShotType) String() string {
	if int(t) < len(shotTypeNames) {
		return shotTypeNames[t]
	}
	return fmt.Sprintf("ShotType(%d)", uint8(t))
}

func (t ShotType) Valid() bool { return t >= TwoPoint && t <= FreeThrow }

// Value is the number of points a made shot of this type is worth.
func (t ShotType) Value() int {
	switch t {
	case TwoPoint:
		return 2
	case ThreePoint:
		return 3
	case FreeThrow:
		return 1
	}
	return 0
}

func ParseShotType(s string) (ShotType, error) {
	for i, name := range shotTypeNames {
		if i > 0 && name == s {
			return ShotType(i), nil
		}
	}
	return ShotTypeUnknown, fmt.Errorf("unknown shot type %q", s)
}

func (t ShotType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *ShotType) UnmarshalText(b []byte) error {
	v, err := ParseShotType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Zone is one of the six named shooting regions.
type Zone uint8

const (
	ZoneUnknown Zone = iota
	Paint
	MidRangeLeft
	MidRangeRight
	LeftCorner3
	RightCorner3
	AboveBreak3
)

var zoneNames = [...]string{"Unknown", "Paint", "Mid-Range Left", "Mid-Range Right", "Left Corner 3", "Right Corner 3", "Above Break 3"}

// Zones lists the six classifiable zones in display order.
var Zones = []Zone{Paint, MidRangeLeft, MidRangeRight, LeftCorner3, RightCorner3, AboveBreak3}

func (z Zone) String() string {
	if int(z) < len(zoneNames) {
		return zoneNames[z]
	}
	return zoneNames[ZoneUnknown]
}

func (z Zone) Valid() bool { return z >= Paint && z <= AboveBreak3 }

// IsThree reports whether the zone lies beyond the arc.
func (z Zone) IsThree() bool { return z == LeftCorner3 || z == RightCorner3 || z == AboveBreak3 }

func ParseZone(s string) (Zone, error) {
	for _, z := range Zones {
		if z.String() == s {
			return z, nil
		}
	}
	return ZoneUnknown, fmt.Errorf("unknown zone %q", s)
}

func (z Zone) MarshalText() ([]byte, error) { return []byte(z.String()), nil }

func (z *Zone) UnmarshalText(b []byte) error {
	if string(b) == zoneNames[ZoneUnknown] {
		*z = ZoneUnknown
		return nil
	}
	v, err := ParseZone(string(b))
	if err != nil {
		return err
	}
	*z = v
	return nil
}

// ContestLevel is the ordinal defensive pressure on a shot. The zero value means no level was
// recorded or derived; it is never counted in a level bucket.
type ContestLevel uint8

const (
	ContestUnrated ContestLevel = iota
	Uncontested
	LightContest
	MediumContest
	HeavyContest
	Blocked
)

var contestNames = [...]string{"", "uncontested", "light_contest", "medium_contest", "heavy_contest", "blocked"}

// ContestLevels lists the five rated levels in ordinal order.
var ContestLevels = []ContestLevel{Uncontested, LightContest, MediumContest, HeavyContest, Blocked}

func (l ContestLevel) String() string {
	if int(l) < len(contestNames) {
		return contestNames[l]
	}
	return fmt.Sprintf("ContestLevel(%d)", uint8(l))
}

func (l ContestLevel) Rated() bool { return l >= Uncontested && l <= Blocked }

// Ordinal maps uncontested..blocked onto 0..4. Unrated levels report 0.
func (l ContestLevel) Ordinal() int {
	if !l.Rated() {
		return 0
	}
	return int(l) - 1
}

func ParseContestLevel(s string) (ContestLevel, error) {
	if s == "" {
		return ContestUnrated, nil
	}
	for _, l := range ContestLevels {
		if l.String() == s {
			return l, nil
		}
	}
	return ContestUnrated, fmt.Errorf("unknown contest level %q", s)
}

func (l ContestLevel) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

func (l *ContestLevel) UnmarshalText(b []byte) error {
	v, err := ParseContestLevel(string(b))
	if err != nil {
		return err
	}
	*l = v
	return nil
}
