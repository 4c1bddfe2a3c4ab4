package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"bragi/internal/design"
	"bragi/internal/models"
	"bragi/internal/styles"
)

var themesVerify bool

// themesCmd dumps the static style tables.
var themesCmd = &cobra.Command{
	Use:   "themes [theme]",
	Short: "List the built-in color themes",
	Long: `Prints every built-in color theme with its palette, or one theme in full
when a name is given. With --verify, CSS is emitted for every theme and
style variant combination and audited for the custom properties the
renderer depends on.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		names := make([]string, 0, len(styles.ThemeStyles))
		for theme := range styles.ThemeStyles {
			names = append(names, string(theme))
		}
		sort.Strings(names)

		if len(args) == 1 {
			theme, ok := models.ParseTheme(args[0])
			if !ok {
				return fmt.Errorf("unknown theme %q (known: %s)", args[0], strings.Join(names, ", "))
			}
			printThemeDetail(theme)
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Theme", "Primary", "Accent", "Background", "Text", "Spacing"})
		table.SetBorder(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		for _, name := range names {
			ts := styles.ThemeFor(models.Theme(name))
			table.Append([]string{
				name,
				ts.Palette.Primary,
				ts.Palette.Accent,
				ts.Palette.Background,
				ts.Palette.Text,
				string(ts.Spacing),
			})
		}
		table.Render()

		if !themesVerify {
			return nil
		}
		return verifyThemes()
	},
}

func printThemeDetail(theme models.Theme) {
	ts := styles.ThemeFor(theme)
	fmt.Printf("%s\n", color.CyanString(string(theme)))
	fmt.Printf("  Primary:     %s\n", ts.Palette.Primary)
	fmt.Printf("  Secondary:   %s\n", ts.Palette.Secondary)
	fmt.Printf("  Accent:      %s\n", ts.Palette.Accent)
	fmt.Printf("  Background:  %s\n", ts.Palette.Background)
	fmt.Printf("  Text:        %s\n", ts.Palette.Text)
	fmt.Printf("  Highlights:  %s\n", strings.Join(ts.Palette.Highlights[:], ", "))
	fmt.Printf("  Fonts:       %s / %s\n", ts.Fonts.Heading, ts.Fonts.Body)
	fmt.Printf("  Spacing:     %s\n", ts.Spacing)
	fmt.Printf("  Image style: %s\n", ts.ImageStyle)
}

// verifyThemes runs the emitter for every theme and variant combination and
// audits the CSS for the required custom properties.
func verifyThemes() error {
	variants := []models.DesignStyle{
		models.StyleCorporate, models.StylePlayful, models.StyleInnovative,
		models.StyleTech, models.StyleElegant, models.StyleMinimal,
	}

	fmt.Println("\nAuditing emitted CSS...")
	var failures int
	for theme, ts := range styles.ThemeStyles {
		style := models.SlideStyle{
			Theme:      theme,
			Palette:    ts.Palette,
			Fonts:      ts.Fonts,
			Spacing:    ts.Spacing,
			ImageStyle: ts.ImageStyle,
			Elements:   ts.Elements,
		}
		for _, variant := range variants {
			spec := design.Emit(style, models.LayoutCentered, models.SlideCover, variant)
			missing, err := design.MissingProperties(spec.CSS)
			if err != nil {
				return fmt.Errorf("css audit failed for theme %s variant %s: %w", theme, variant, err)
			}
			if len(missing) > 0 {
				failures++
				fmt.Printf("  %s %s/%s missing: %v\n", color.RedString("FAIL"), theme, variant, missing)
			}
		}
	}
	if failures > 0 {
		return fmt.Errorf("%d theme/variant combinations missing required properties", failures)
	}
	fmt.Printf("  %s all %d themes x %d variants emit the required properties\n",
		color.GreenString("OK"), len(styles.ThemeStyles), len(variants))
	return nil
}

func init() {
	rootCmd.AddCommand(themesCmd)

	themesCmd.Flags().BoolVar(&themesVerify, "verify", false, "Audit the emitted CSS for every theme and style variant")
}
