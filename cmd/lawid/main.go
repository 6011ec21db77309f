package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/coolbeans/lawid/pkg/era"
	"github.com/coolbeans/lawid/pkg/lawid"
	"github.com/coolbeans/lawid/pkg/ministry"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "lawid",
		Short: "Japanese law-ID toolkit",
		Long: `lawid decodes and encodes the law IDs of the e-Gov law database
and converts between the Gregorian and the Japanese era (Wareki)
calendar used inside them.`,
		Version: version,
	}

	rootCmd.AddCommand(decodeCmd())
	rootCmd.AddCommand(warekiCmd())
	rootCmd.AddCommand(ministryCmd())
	rootCmd.AddCommand(eraCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// decodeResult is the JSON view of a parsed law ID.
type decodeResult struct {
	ID        string       `json:"id"`
	Era       string       `json:"era"`
	EraNumber int          `json:"era_number"`
	Year      int          `json:"year"`
	ADYear    int          `json:"ad_year"`
	Kind      string       `json:"kind"`
	Detail    lawid.LawType `json:"detail"`
}

func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [law-id]",
		Short: "Decode a canonical law ID",
		Long: `Decode a 15-character law ID into its era, Wareki year and
instrument fields.

Example:
  lawid decode 325M50001000004`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := lawid.Parse(args[0])
			if err != nil {
				return err
			}
			return printJSON(decodeResult{
				ID:        id.IDString(),
				Era:       id.Wareki.Era.String(),
				EraNumber: id.Wareki.Era.Number(),
				Year:      id.Wareki.Year,
				ADYear:    id.Wareki.ADYear(),
				Kind:      kindName(id.Type),
				Detail:    id.Type,
			})
		},
	}
}

func warekiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wareki [text]",
		Short: "Parse a Wareki year expression",
		Long: `Parse an era-year expression (昭和十五年, 昭和15年, 令和元年)
from free text.

Example:
  lawid wareki 昭和十五年`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, ok := era.ParseWareki(args[0])
			if !ok {
				return fmt.Errorf("no era year expression in %q", args[0])
			}
			return printJSON(struct {
				Era     string `json:"era"`
				Year    int    `json:"year"`
				ADYear  int    `json:"ad_year"`
				Display string `json:"display"`
			}{w.Era.String(), w.Year, w.ADYear(), w.String()})
		},
	}
}

func ministryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ministry [title]",
		Short: "Derive the issuing bodies from a promulgation line",
		Long: `Derive the issuing-body period and members from a promulgation
line such as 令和五年経済産業省令第六十号, and print the ministry
field they encode to.

Example:
  lawid ministry 令和五年経済産業省令第六十号`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := ministry.FromName(args[0])
			if err != nil {
				return err
			}
			names := make([]string, len(m.Bodies))
			for i, b := range m.Bodies {
				names[i] = b.Name()
			}
			return printJSON(struct {
				Period string   `json:"period"`
				Bodies []string `json:"bodies"`
				Field  string   `json:"field"`
			}{m.Period.Tag(), names, m.IDString()})
		},
	}
}

func eraCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "era [yyyy-mm-dd]",
		Short: "Convert a Gregorian date to its Wareki year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDate(args[0])
			if err != nil {
				return err
			}
			w, ok := era.FromDate(d)
			if !ok {
				return fmt.Errorf("%s predates the era system", args[0])
			}
			return printJSON(struct {
				Era     string `json:"era"`
				Year    int    `json:"year"`
				Display string `json:"display"`
			}{w.Era.String(), w.Year, w.String()})
		},
	}
}

func parseDate(s string) (era.Date, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return era.Date{}, fmt.Errorf("date %q: want yyyy-mm-dd", s)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return era.Date{}, fmt.Errorf("date %q: %w", s, err)
		}
		nums[i] = n
	}
	return era.NewDate(nums[0], nums[1], nums[2]), nil
}

func kindName(t lawid.LawType) string {
	switch t.(type) {
	case lawid.Constitution:
		return "constitution"
	case lawid.Act:
		return "act"
	case lawid.CabinetOrder:
		return "cabinet_order"
	case lawid.ImperialOrder:
		return "imperial_order"
	case lawid.DajokanFukoku:
		return "dajokan_fukoku"
	case lawid.DajokanTasshi:
		return "dajokan_tasshi"
	case lawid.DajokanHutatsu:
		return "dajokan_hutatsu"
	case lawid.MinistryOrder:
		return "ministry_order"
	case lawid.PersonnelRule:
		return "personnel_rule"
	case lawid.Regulation:
		return "institution_regulation"
	case lawid.PrimeMinisterDecision:
		return "prime_minister_decision"
	default:
		return "unknown"
	}
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
