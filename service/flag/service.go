package flag

import (
	"flag"
	"fmt"

	"github.com/elC0mpa/cloud-optimizer/model"
)

func NewService() *service {
	return &service{}
}

func (s *service) GetParsedFlags() (model.Flags, error) {
	clientsFile := flag.String("clients", "clients.json", "Path of the client registry JSON file")
	clientID := flag.String("client", "", "ID of the registered client to analyze")
	cost := flag.Bool("cost", false, "Display the estimated cost breakdown")
	recommend := flag.Bool("recommend", false, "Display optimization recommendations")
	test := flag.Bool("test", false, "Test the client's cloud credentials")
	periodDays := flag.Int("days", 30, "Analysis window in days for cost estimation")

	flag.Parse()

	if *clientID == "" {
		return model.Flags{}, fmt.Errorf("the -client flag is required")
	}

	return model.Flags{
		ClientsFile: *clientsFile,
		ClientID:    *clientID,
		Cost:        *cost,
		Recommend:   *recommend,
		Test:        *test,
		PeriodDays:  *periodDays,
	}, nil
}
