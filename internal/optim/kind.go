package optim

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownKind is returned when a strategy name or tag is not recognized.
var ErrUnknownKind = errors.New("unknown beta update strategy")

// Kind identifies a beta-update strategy.
//
// It is the only state a strategy carries, which makes it the full
// serialized form of a strategy selection.
type Kind int

// Supported strategies.
const (
	KindUnknown Kind = iota
	KindFletcherReeves
	KindPolakRibiere
	KindPolakRibierePlus
	KindHestenesStiefel
)

var kindNames = map[Kind]string{
	KindFletcherReeves:   "fletcher-reeves",
	KindPolakRibiere:     "polak-ribiere",
	KindPolakRibierePlus: "polak-ribiere-plus",
	KindHestenesStiefel:  "hestenes-stiefel",
}

var kindAliases = map[Kind][]string{
	KindFletcherReeves:   {"fr"},
	KindPolakRibiere:     {"pr"},
	KindPolakRibierePlus: {"pr+", "prplus"},
	KindHestenesStiefel:  {"hs"},
}

var kindFormulas = map[Kind]string{
	KindFletcherReeves:   "β = (g₁·g₁) / (g₀·g₀)",
	KindPolakRibiere:     "β = g₁·(g₁−g₀) / ‖g₀‖²",
	KindPolakRibierePlus: "β = max(0, g₁·(g₁−g₀) / ‖g₀‖²)",
	KindHestenesStiefel:  "β = g₁·(g₁−g₀) / (g₁−g₀)·p₀",
}

// Kinds returns every supported strategy in declaration order.
func Kinds() []Kind {
	return []Kind{KindFletcherReeves, KindPolakRibiere, KindPolakRibierePlus, KindHestenesStiefel}
}

// String returns the canonical name of the strategy.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Aliases returns the short names accepted by ParseKind for k.
func (k Kind) Aliases() []string {
	return append([]string(nil), kindAliases[k]...)
}

// Formula returns a human-readable formula of the strategy, where g₀ is
// the previous gradient, g₁ the new gradient and p₀ the previous direction.
func (k Kind) Formula() string {
	return kindFormulas[k]
}

// Valid reports whether k names a supported strategy.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind resolves a strategy from its canonical name, an alias or its
// Go type name. Matching ignores case, dashes, underscores and spaces.
func ParseKind(s string) (Kind, error) {
	key := normalizeKind(s)
	for _, k := range Kinds() {
		if key == normalizeKind(kindNames[k]) {
			return k, nil
		}
		for _, alias := range kindAliases[k] {
			if key == alias {
				return k, nil
			}
		}
	}
	return KindUnknown, errors.Wrapf(ErrUnknownKind, "%q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, errors.Wrapf(ErrUnknownKind, "kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func normalizeKind(s string) string {
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(s)))
}

// expectKind decodes a strategy tag and checks that it names want.
func expectKind(want Kind, text []byte) error {
	got, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	if got != want {
		return errors.Errorf("strategy tag %q does not match %s", text, want)
	}
	return nil
}
