package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/goliatone/go-surveyform/internal/config"
	"github.com/goliatone/go-surveyform/internal/logger"
	"github.com/goliatone/go-surveyform/internal/shell"
	"github.com/goliatone/go-surveyform/pkg/form"
	"github.com/goliatone/go-surveyform/pkg/orchestrator"
	"github.com/goliatone/go-surveyform/pkg/render"
	"github.com/goliatone/go-surveyform/pkg/renderers/tui"
	"github.com/goliatone/go-surveyform/pkg/renderers/vanilla"
	"github.com/goliatone/go-surveyform/pkg/submit"
)

// newOrchestrator registers both renderers. The tui renderer is bound to the
// app driver so sessions and error views share the same streams.
func (rt *runtime) newOrchestrator() (*orchestrator.Orchestrator, *tui.Renderer, error) {
	html, err := vanilla.New()
	if err != nil {
		return nil, nil, err
	}
	term := tui.New(
		tui.WithOutput(rt.app.Out),
		tui.WithPromptDriver(rt.app.Driver),
		tui.WithConfirmSubmit(rt.flags.confirm),
	)
	orch := orchestrator.New(orchestrator.WithRegistry(render.NewRegistry(html, term)))
	return orch, term, nil
}

// submitHandler checks the contract, logs the values and acknowledges.
// A nil ack only logs.
func (rt *runtime) submitHandler(orch *orchestrator.Orchestrator, ack submit.Acknowledger) form.SubmitHandler {
	return submit.WithContract(orch.Schema(), submit.NewLogger(ack, rt.logger))
}

func (rt *runtime) runMount(ctx context.Context) error {
	orch, term, err := rt.newOrchestrator()
	if err != nil {
		return rt.printer.Error("Renderer setup failed", err.Error(), nil)
	}

	s := shell.New()
	switch rt.cfg.Renderer {
	case config.RendererVanilla:
		return rt.mountPage(ctx, s, orch)
	default:
		return rt.mountTerminal(ctx, s, orch, term)
	}
}

func (rt *runtime) mountPage(ctx context.Context, s *shell.Shell, orch *orchestrator.Orchestrator) error {
	host := shell.HostPage(orch.Schema().Title, rt.cfg.Mount)
	if rt.cfg.Page != "" {
		data, err := os.ReadFile(rt.cfg.Page)
		if err != nil {
			return rt.printer.Error("Host page not readable", err.Error(), []string{"Check the --page path"})
		}
		host = data
	}

	var out bytes.Buffer
	target := shell.Page{
		Host:    bytes.NewReader(host),
		MountID: rt.cfg.Mount,
		Render: func(ctx context.Context) ([]byte, error) {
			return orch.Generate(ctx, orchestrator.Request{
				Renderer:     config.RendererVanilla,
				ThemeVariant: rt.cfg.Theme.Variant,
			})
		},
		Out: &out,
	}
	if err := s.Mount(ctx, target); err != nil {
		return rt.mountError(ctx, err)
	}

	if rt.cfg.Output == "" {
		_, err := rt.app.Out.Write(out.Bytes())
		return err
	}
	if err := os.WriteFile(rt.cfg.Output, out.Bytes(), 0o644); err != nil {
		return rt.printer.Error("Failed to write output", err.Error(), nil)
	}
	rt.printer.Success("Survey written to %s", rt.cfg.Output)
	return nil
}

func (rt *runtime) mountTerminal(ctx context.Context, s *shell.Shell, orch *orchestrator.Orchestrator, term *tui.Renderer) error {
	ctrl, err := orch.Controller()
	if err != nil {
		return rt.printer.Error("Invalid survey schema", err.Error(), nil)
	}
	handler := rt.submitHandler(orch, rt.printer)

	in, _ := rt.app.In.(shell.FileDescriptor)
	out, _ := rt.app.Out.(shell.FileDescriptor)
	target := shell.Terminal{
		In:         in,
		Out:        out,
		IsTerminal: rt.app.IsTerminal,
		Run: func(ctx context.Context) error {
			return term.NewSession().Run(ctx, ctrl, handler)
		},
	}

	err = s.Mount(ctx, target)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, tui.ErrAborted), errors.Is(err, context.Canceled):
		rt.printer.Warning("Survey aborted, nothing was submitted")
		return nil
	case errors.Is(err, shell.ErrMountPointMissing):
		return rt.mountError(ctx, err)
	case submit.IsContractViolation(err):
		return rt.printer.Error("Submission rejected", err.Error(), nil)
	default:
		logger.Error(ctx, "survey session failed", err)
		return rt.printer.Error("Survey failed", err.Error(), nil)
	}
}

func (rt *runtime) mountError(ctx context.Context, err error) error {
	logger.Error(ctx, "mount failed", err)
	switch {
	case errors.Is(err, shell.ErrMountPointMissing):
		if rt.cfg.Renderer == config.RendererTUI {
			return rt.printer.Error("Mount point not found", err.Error(), []string{
				"Run surveyform from an interactive terminal",
				"Pass --renderer vanilla to write HTML instead",
			})
		}
		return rt.printer.Error("Mount point not found", err.Error(), []string{
			fmt.Sprintf("Add <div id=%q></div> to the host page", rt.cfg.Mount),
			"Pass --mount with the id of an existing element",
		})
	case errors.Is(err, shell.ErrAmbiguousMountPoint):
		return rt.printer.Error("Mount point is ambiguous", err.Error(), []string{"Give the mount element a unique id"})
	case errors.Is(err, shell.ErrAlreadyMounted):
		return rt.printer.Error("Survey already mounted", err.Error(), []string{"Pass a host page without a mounted survey"})
	default:
		return rt.printer.Error("Mount failed", err.Error(), nil)
	}
}
