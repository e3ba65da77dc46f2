package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/jobsearch-agent/internal/config"
	"github.com/jonathan/jobsearch-agent/internal/kit"
	"github.com/jonathan/jobsearch-agent/internal/rendering"
	"github.com/jonathan/jobsearch-agent/internal/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a tailored resume and cover letter for one posting",
	Long:  "Loads the application kits, picks the variant matching the role's seniority and renders the resume and cover letter. Documents go to stdout, or to files when --out-dir is set.",
	RunE:  runRender,
}

var (
	renderTitle       string
	renderCompany     string
	renderDescription string
	renderOutDir      string
)

func init() {
	renderCmd.Flags().StringVar(&renderTitle, "title", "", "job title (required)")
	renderCmd.Flags().StringVar(&renderCompany, "company", "", "company name (required)")
	renderCmd.Flags().StringVar(&renderDescription, "description", "", "job description text")
	renderCmd.Flags().StringVar(&renderOutDir, "out-dir", "", "directory to write resume.md and cover_letter.md into")

	if err := renderCmd.MarkFlagRequired("title"); err != nil {
		panic(fmt.Sprintf("failed to mark title flag as required: %v", err))
	}
	if err := renderCmd.MarkFlagRequired("company"); err != nil {
		panic(fmt.Sprintf("failed to mark company flag as required: %v", err))
	}

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	logger := newLogger()

	cfg, err := getConfig()
	if err != nil {
		return err
	}

	renderer, err := buildRenderer(cfg)
	if err != nil {
		return err
	}

	job := &types.JobPosting{
		Title:       renderTitle,
		Company:     renderCompany,
		Description: renderDescription,
	}
	rendered := renderer.Render(job)

	if renderOutDir == "" {
		fmt.Println(rendered.ResumeText)
		fmt.Print("\n---\n\n")
		fmt.Println(rendered.CoverLetterText)
		return nil
	}

	if err := os.MkdirAll(renderOutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	resumePath := filepath.Join(renderOutDir, outputName(job.Company, "resume"))
	coverPath := filepath.Join(renderOutDir, outputName(job.Company, "cover_letter"))
	if err := os.WriteFile(resumePath, []byte(rendered.ResumeText), 0o644); err != nil {
		return fmt.Errorf("failed to write resume: %w", err)
	}
	if err := os.WriteFile(coverPath, []byte(rendered.CoverLetterText), 0o644); err != nil {
		return fmt.Errorf("failed to write cover letter: %w", err)
	}

	logger.Info("documents written",
		zap.String("resume", resumePath), zap.String("cover_letter", coverPath))
	return nil
}

func buildRenderer(cfg *config.Config) (*rendering.Renderer, error) {
	if cfg.Kits.SeniorPath == "" {
		return nil, fmt.Errorf("kits.senior-path is not configured")
	}

	senior, err := kit.Load(cfg.Kits.SeniorPath, types.KitSenior)
	if err != nil {
		return nil, fmt.Errorf("failed to load senior kit: %w", err)
	}

	var director *types.ApplicationKit
	if cfg.Kits.DirectorPath != "" {
		director, err = kit.Load(cfg.Kits.DirectorPath, types.KitDirector)
		if err != nil {
			return nil, fmt.Errorf("failed to load director kit: %w", err)
		}
	}

	return rendering.NewRenderer(senior, director,
		rendering.WithOverrides(rendering.OverridesFromKit(senior))), nil
}

// outputName builds a filename like acme_resume.md.
func outputName(company, kind string) string {
	slug := strings.ToLower(strings.Join(strings.Fields(company), "_"))
	if slug == "" {
		slug = "application"
	}
	return slug + "_" + kind + ".md"
}
