package games

import (
	"errors"
	"fmt"
	"strings"

	"matkabook/models"
)

var (
	ErrUnknownGameType = errors.New("unknown game type rule")
	ErrBadPrediction   = errors.New("invalid prediction for game type")
	ErrBadResult       = errors.New("invalid result format")
)

// rule validates a prediction at placement time and judges it against a
// declared result at settlement time. Both sides use the same entry so the
// two can never disagree about the format.
type rule struct {
	validate func(prediction string) bool
	judge    func(prediction, result string) bool
}

var rules = map[string]rule{
	models.GameCoinFlip: {
		validate: func(p string) bool { return p == "heads" || p == "tails" },
		judge:    func(p, r string) bool { return p == r },
	},
	// Jodi: exact two-digit match against the draw.
	models.GameSatamatkaJodi: {
		validate: isTwoDigits,
		judge:    func(p, r string) bool { return p == r },
	},
	// Harf: one positional digit. "a7" backs 7 as the open (tens) digit,
	// "b7" backs 7 as the close (units) digit.
	models.GameSatamatkaHarf: {
		validate: func(p string) bool {
			return len(p) == 2 && (p[0] == 'a' || p[0] == 'b') && isDigit(p[1])
		},
		judge: func(p, r string) bool {
			if p[0] == 'a' {
				return p[1] == r[0]
			}
			return p[1] == r[1]
		},
	},
	// Crossing: 2 to 4 distinct digits; the bet covers every two-digit
	// combination of them, so it wins when both draw digits are in the set.
	models.GameSatamatkaCross: {
		validate: isDistinctDigits,
		judge: func(p, r string) bool {
			return strings.IndexByte(p, r[0]) >= 0 && strings.IndexByte(p, r[1]) >= 0
		},
	},
	models.GameSatamatkaOddEven: {
		validate: func(p string) bool { return p == "odd" || p == "even" },
		judge: func(p, r string) bool {
			n := int(r[0]-'0')*10 + int(r[1]-'0')
			if n%2 == 0 {
				return p == "even"
			}
			return p == "odd"
		},
	},
	// Toss and match winner: the prediction is a team name, judged by exact
	// match against the declared winner.
	models.GameCricketToss: {
		validate: func(p string) bool { return p != "" },
		judge:    func(p, r string) bool { return p == r },
	},
	models.GameTeamMatch: {
		validate: func(p string) bool { return p != "" },
		judge:    func(p, r string) bool { return p == r },
	},
}

// Normalize canonicalizes a raw prediction before validation and storage.
func Normalize(prediction string) string {
	return strings.ToLower(strings.TrimSpace(prediction))
}

// ValidatePrediction checks a normalized prediction against the game type's
// format. For team games the market's team names are the allowed values.
func ValidatePrediction(gameType, prediction string, market *models.Market) error {
	r, ok := rules[gameType]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownGameType, gameType)
	}
	if !r.validate(prediction) {
		return fmt.Errorf("%w: %q", ErrBadPrediction, prediction)
	}
	if gameType == models.GameCricketToss || gameType == models.GameTeamMatch {
		if prediction != Normalize(market.TeamA) && prediction != Normalize(market.TeamB) {
			return fmt.Errorf("%w: %q is not a team in this market", ErrBadPrediction, prediction)
		}
	}
	return nil
}

// ValidateResult checks a declared result against the market kind: a
// two-digit draw for satamatka, heads/tails for coin flips, one of the two
// team names for sports markets.
func ValidateResult(market *models.Market, result string) error {
	switch market.Kind {
	case models.MarketKindSatamatka:
		if !isTwoDigits(result) {
			return fmt.Errorf("%w: satamatka result must be two digits, got %q", ErrBadResult, result)
		}
	case models.MarketKindCoinFlip:
		if result != "heads" && result != "tails" {
			return fmt.Errorf("%w: coin flip result must be heads or tails, got %q", ErrBadResult, result)
		}
	case models.MarketKindCricketToss, models.MarketKindTeamMatch:
		if result != Normalize(market.TeamA) && result != Normalize(market.TeamB) {
			return fmt.Errorf("%w: result %q is not a team in this market", ErrBadResult, result)
		}
	default:
		return fmt.Errorf("%w: market kind %s", ErrUnknownGameType, market.Kind)
	}
	return nil
}

// Judge reports whether a bet wins. Pure function of its arguments; both are
// expected normalized and pre-validated, but malformed input still fails
// closed with an error rather than a guessed outcome.
func Judge(gameType, prediction, result string) (bool, error) {
	r, ok := rules[gameType]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownGameType, gameType)
	}
	if !r.validate(prediction) {
		return false, fmt.Errorf("%w: %q", ErrBadPrediction, prediction)
	}
	switch gameType {
	case models.GameSatamatkaJodi, models.GameSatamatkaHarf,
		models.GameSatamatkaCross, models.GameSatamatkaOddEven:
		if !isTwoDigits(result) {
			return false, fmt.Errorf("%w: %q", ErrBadResult, result)
		}
	}
	return r.judge(prediction, result), nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isTwoDigits(s string) bool {
	return len(s) == 2 && isDigit(s[0]) && isDigit(s[1])
}

func isDistinctDigits(s string) bool {
	if len(s) < 2 || len(s) > 4 {
		return false
	}
	var seen [10]bool
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
		d := s[i] - '0'
		if seen[d] {
			return false
		}
		seen[d] = true
	}
	return true
}
