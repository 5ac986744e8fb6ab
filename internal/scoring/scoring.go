package scoring

import (
	"fmt"
	"strings"
)

// Tier is the elf skill level derived from the trivia score.
type Tier string

const (
	TierBeginner     Tier = "Alkuharjoittelija-tonttu"
	TierIntermediate Tier = "Tiimi-tonttu"
	TierExpert       Tier = "Super-tonttu"
)

const (
	expertThreshold       = 9
	intermediateThreshold = 5
)

// LevelFor maps a trivia score to its tier. Total over all integers.
func LevelFor(score int) Tier {
	switch {
	case score >= expertThreshold:
		return TierExpert
	case score >= intermediateThreshold:
		return TierIntermediate
	default:
		return TierBeginner
	}
}

// FirstName returns the first whitespace-delimited token of a full name.
func FirstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// SummaryFor builds the one-line result summary addressed to the
// visitor's first name. The tier decides which template is used.
func SummaryFor(name string, tier Tier, score int) string {
	first := FirstName(name)
	switch tier {
	case TierExpert:
		return fmt.Sprintf("Yhteenveto: %s on todellinen joulun sankari ja ehdotonta eliittiä!", first)
	case TierIntermediate:
		return fmt.Sprintf("Yhteenveto: %s on luotettava tiimipelaaja, jota ilman paja ei pyörisi.", first)
	default:
		return fmt.Sprintf("Yhteenveto: %s on innokas oppija, jolla on oikea asenne!", first)
	}
}
