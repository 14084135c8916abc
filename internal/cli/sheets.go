package cli

import (
	"fmt"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"

	"github.com/UC-Davis-molecular-computing/labelator/pkg/sheet"
)

// sheetRow is one line of the sheets listing.
type sheetRow struct {
	Name     string
	Rows     int
	Cols     int
	Capacity int
	PageW    float64
	PageH    float64
	BuiltIn  bool
}

// geometry returns a compact one-line description of the sheet's grid.
func (r sheetRow) geometry() string {
	return fmt.Sprintf("%dx%d, %d labels, %gx%g px", r.Rows, r.Cols, r.Capacity, r.PageW, r.PageH)
}

// sheetsCommand creates the sheets command for listing sheet geometries.
func (c *CLI) sheetsCommand() *cobra.Command {
	var (
		sheetFile string
		pick      bool
	)

	cmd := &cobra.Command{
		Use:   "sheets",
		Short: "List the available sheet geometries",
		Long: `List the available sheet geometries.

Shows the built-in sheets plus any definitions from --sheet-file. With
--pick, an interactive list opens instead and the chosen sheet name is
printed on its own, ready for --sheet or $` + EnvSheet + `.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := collectSheets(sheetFile)
			if err != nil {
				return err
			}
			if pick {
				return pickSheet(rows)
			}
			printSheetTable(rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&sheetFile, "sheet-file", "", "TOML file with extra sheet definitions")
	cmd.Flags().BoolVar(&pick, "pick", false, "pick a sheet interactively and print its name")

	return cmd
}

// collectSheets merges the built-in presets with the definitions from the
// given sheet file, sorted by name. File definitions shadow same-named
// presets, matching how --sheet resolves them.
func collectSheets(file string) ([]sheetRow, error) {
	byName := map[string]sheetRow{}
	for _, name := range sheet.Names() {
		p, _ := sheet.Lookup(name)
		byName[name] = newSheetRow(p, true)
	}

	if file != "" {
		fromFile, err := sheet.LoadSheets(file)
		if err != nil {
			return nil, err
		}
		for name, p := range fromFile {
			byName[name] = newSheetRow(p, false)
		}
	}

	names := maps.Keys(byName)
	slices.Sort(names)
	rows := make([]sheetRow, 0, len(byName))
	for _, name := range names {
		rows = append(rows, byName[name])
	}
	return rows, nil
}

func newSheetRow(p sheet.Parameters, builtIn bool) sheetRow {
	return sheetRow{
		Name:     p.Name,
		Rows:     p.Rows,
		Cols:     p.Cols,
		Capacity: p.Capacity(),
		PageW:    p.PageWidth,
		PageH:    p.PageHeight,
		BuiltIn:  builtIn,
	}
}

// printSheetTable renders the sheet listing as a bordered table.
func printSheetTable(rows []sheetRow) {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	data := make([][]string, len(rows))
	for i, r := range rows {
		source := "built-in"
		if !r.BuiltIn {
			source = "sheet file"
		}
		data[i] = []string{
			r.Name,
			fmt.Sprintf("%dx%d", r.Rows, r.Cols),
			fmt.Sprintf("%d", r.Capacity),
			fmt.Sprintf("%gx%g px", r.PageW, r.PageH),
			source,
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Sheet", "Grid", "Labels", "Page", "Source").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return listNormalStyle
			}
			return listDimStyle
		})

	fmt.Println(t.Render())
}

// pickSheet opens the interactive picker and prints the chosen name.
// The bare name on stdout keeps the output usable in scripts.
func pickSheet(rows []sheetRow) error {
	m := NewSheetListModel(rows)
	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	fm, ok := finalModel.(SheetListModel)
	if !ok || fm.Selected == nil {
		printDetail("No sheet selected")
		return nil
	}

	fmt.Println(fm.Selected.Name)
	return nil
}
