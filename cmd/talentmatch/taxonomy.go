package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "Inspect and augment the taxonomy datasets",
}

var taxonomyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print taxonomy dataset sizes",
	RunE:  runTaxonomyStats,
}

var taxonomyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the current taxonomy to dataset JSON files",
	RunE:  runTaxonomyExport,
}

var taxonomyAddSkillsCmd = &cobra.Command{
	Use:   "add-skills [skills...]",
	Short: "Add skills to an industry category and export the datasets",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaxonomyAddSkills,
}

var taxonomyAddTitlesCmd = &cobra.Command{
	Use:   "add-titles [titles...]",
	Short: "Add job titles to an industry and export the datasets",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaxonomyAddTitles,
}

var taxonomyAddCertsCmd = &cobra.Command{
	Use:   "add-certs [certifications...]",
	Short: "Add certifications to an industry and export the datasets",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaxonomyAddCerts,
}

var (
	taxExportDir string
	taxIndustry  string
	taxCategory  string
)

func init() {
	taxonomyExportCmd.Flags().StringVarP(&taxExportDir, "dir", "d", "datasets", "Directory to write dataset files to")

	taxonomyAddSkillsCmd.Flags().StringVar(&taxIndustry, "industry", "", "Industry to add under (required)")
	taxonomyAddSkillsCmd.Flags().StringVar(&taxCategory, "category", "", "Skill category to add under (required)")
	taxonomyAddSkillsCmd.Flags().StringVarP(&taxExportDir, "dir", "d", "datasets", "Directory to write dataset files to")
	_ = taxonomyAddSkillsCmd.MarkFlagRequired("industry")
	_ = taxonomyAddSkillsCmd.MarkFlagRequired("category")

	for _, cmd := range []*cobra.Command{taxonomyAddTitlesCmd, taxonomyAddCertsCmd} {
		cmd.Flags().StringVar(&taxIndustry, "industry", "", "Industry to add under (required)")
		cmd.Flags().StringVarP(&taxExportDir, "dir", "d", "datasets", "Directory to write dataset files to")
		_ = cmd.MarkFlagRequired("industry")
	}

	taxonomyCmd.AddCommand(taxonomyStatsCmd)
	taxonomyCmd.AddCommand(taxonomyExportCmd)
	taxonomyCmd.AddCommand(taxonomyAddSkillsCmd)
	taxonomyCmd.AddCommand(taxonomyAddTitlesCmd)
	taxonomyCmd.AddCommand(taxonomyAddCertsCmd)
	rootCmd.AddCommand(taxonomyCmd)
}

func runTaxonomyStats(_ *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}
	store, err := buildStore(cfg)
	if err != nil {
		return err
	}
	return writeOutput("", store.Stats())
}

func runTaxonomyExport(_ *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}
	store, err := buildStore(cfg)
	if err != nil {
		return err
	}
	if err := store.Export(taxExportDir); err != nil {
		return fmt.Errorf("failed to export taxonomy: %w", err)
	}
	fmt.Printf("Exported taxonomy datasets to %s\n", taxExportDir)
	return nil
}

func runTaxonomyAddSkills(_ *cobra.Command, args []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}
	store, err := buildStore(cfg)
	if err != nil {
		return err
	}

	added := store.AddSkills(taxIndustry, taxCategory, args)
	if err := store.Export(taxExportDir); err != nil {
		return fmt.Errorf("failed to export taxonomy: %w", err)
	}
	fmt.Printf("Added %d skills to %s/%s, exported to %s\n", added, taxIndustry, taxCategory, taxExportDir)
	return nil
}

func runTaxonomyAddTitles(_ *cobra.Command, args []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}
	store, err := buildStore(cfg)
	if err != nil {
		return err
	}

	added := store.AddJobTitles(taxIndustry, args)
	if err := store.Export(taxExportDir); err != nil {
		return fmt.Errorf("failed to export taxonomy: %w", err)
	}
	fmt.Printf("Added %d job titles to %s, exported to %s\n", added, taxIndustry, taxExportDir)
	return nil
}

func runTaxonomyAddCerts(_ *cobra.Command, args []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}
	store, err := buildStore(cfg)
	if err != nil {
		return err
	}

	added := store.AddCertifications(taxIndustry, args)
	if err := store.Export(taxExportDir); err != nil {
		return fmt.Errorf("failed to export taxonomy: %w", err)
	}
	fmt.Printf("Added %d certifications to %s, exported to %s\n", added, taxIndustry, taxExportDir)
	return nil
}
