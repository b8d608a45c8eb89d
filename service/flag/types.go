package flag

import "github.com/elC0mpa/cloud-optimizer/model"

type service struct{}

// FlagService parses the CLI flags into a model.Flags.
type FlagService interface {
	GetParsedFlags() (model.Flags, error)
}
