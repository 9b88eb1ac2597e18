package diagfmt

import (
	"fmt"
	"io"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"codecleanup/internal/engine"
	"codecleanup/internal/rules"
)

// Sarif writes one SARIF 2.1.0 run: every rule of reg becomes a reporting
// descriptor, every finding a result located at its file and line.
// Reports that did not run rules contribute no results.
func Sarif(w io.Writer, reports []*engine.Report, reg *rules.Registry, meta SarifRunMeta) error {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return fmt.Errorf("failed to create SARIF report: %w", err)
	}

	run := sarif.NewRun(*sarif.NewSimpleTool(meta.ToolName))
	if meta.InformationURI != "" {
		run = sarif.NewRunWithInformationURI(meta.ToolName, meta.InformationURI)
	}
	if meta.ToolVersion != "" {
		version := meta.ToolVersion
		run.Tool.Driver.SemanticVersion = &version
	}
	if reg != nil {
		for _, r := range reg.Rules() {
			run.AddRule(r.Code().ID()).
				WithDescription(r.Description()).
				WithDefaultConfiguration(&sarif.ReportingConfiguration{Level: sarifLevel(r.Severity())})
		}
	}

	for _, rep := range reports {
		for _, f := range rep.Findings() {
			location := sarif.NewLocation().WithPhysicalLocation(
				sarif.NewPhysicalLocation().
					WithArtifactLocation(sarif.NewArtifactLocation().WithUri(rep.Path)).
					WithRegion(sarif.NewRegion().WithStartLine(f.Line)),
			)
			result := sarif.NewRuleResult(f.Code.ID()).
				WithMessage(sarif.NewTextMessage(f.Primary())).
				WithLevel(sarifLevel(f.Severity)).
				WithLocations([]*sarif.Location{location})
			run.AddResult(result)
		}
	}
	report.AddRun(run)

	return report.PrettyWrite(w)
}

func sarifLevel(s rules.Severity) string {
	if s == rules.SevWarning {
		return "warning"
	}
	return "note"
}
