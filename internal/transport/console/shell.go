package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"nomina/internal/domain/payroll"
	"nomina/internal/domain/roster"
	"nomina/internal/platform/metrics"
)

type Options struct {
	Language       language.Tag
	CurrencySymbol string
	ClearLines     int
	Pause          bool
}

// Shell runs the interactive menu loop for one session. The roster it is
// given lives exactly as long as the caller keeps it.
type Shell struct {
	in      *lineReader
	render  *renderer
	roster  *roster.Service
	metrics *metrics.Collector
	logger  *zap.Logger
	opts    Options
}

func New(in io.Reader, out io.Writer, svc *roster.Service, collector *metrics.Collector, logger *zap.Logger, opts Options) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}
	if collector == nil {
		collector = metrics.New()
	}
	return &Shell{
		in: newLineReader(in),
		render: &renderer{
			out:      out,
			printer:  message.NewPrinter(opts.Language),
			currency: opts.CurrencySymbol,
		},
		roster:  svc,
		metrics: collector,
		logger:  logger,
		opts:    opts,
	}
}

// Run shows the menu until the user exits or input ends. It returns ctx.Err()
// as soon as the context is cancelled, including while waiting for input.
func (s *Shell) Run(ctx context.Context) error {
	defer func() {
		s.logger.Info("session ended", zap.Any("metrics", s.metrics.Snapshot()))
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.render.menu()
		choice, err := s.in.readLine(ctx)
		if err != nil {
			return endOfInput(err)
		}

		done, err := s.dispatch(ctx, ParseAction(choice))
		if err != nil {
			return endOfInput(err)
		}
		if done {
			return nil
		}
	}
}

func (s *Shell) dispatch(ctx context.Context, action Action) (bool, error) {
	s.logger.Debug("menu action", zap.Stringer("action", action))
	switch action {
	case ActionAdd:
		return false, s.handleAdd(ctx)
	case ActionList:
		return false, s.handleList(ctx)
	case ActionClear:
		return false, s.handleClear(ctx)
	case ActionExit:
		s.render.line("\nSaliendo del programa...")
		return true, nil
	default:
		s.render.line("\nOpción no válida. Intente nuevamente.")
		return false, s.pause(ctx)
	}
}

func (s *Shell) handleAdd(ctx context.Context) error {
	fmt.Fprint(s.render.out, "\nIngrese el nombre completo del trabajador: ")
	name, err := s.in.readLine(ctx)
	if err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		return s.reject(ctx, "name", payroll.ErrNameRequired)
	}

	fmt.Fprintf(s.render.out, "Ingrese el salario mensual (%s): ", s.render.currency)
	raw, err := s.in.readLine(ctx)
	if err != nil {
		return err
	}
	gross, err := parseSalary(raw)
	if err != nil {
		return s.reject(ctx, "salary", err)
	}

	start := time.Now()
	record, err := s.roster.Register(ctx, name, gross)
	if err != nil {
		if errors.Is(err, payroll.ErrInvalidInput) {
			return s.reject(ctx, "salary", err)
		}
		return err
	}
	s.metrics.RecordComputed(time.Since(start))
	s.logger.Info("worker registered",
		zap.String("id", record.ID.String()),
		zap.Float64("gross", record.GrossSalary),
		zap.Float64("net", record.NetSalary),
	)

	s.render.result(record)
	return s.pause(ctx)
}

func (s *Shell) handleList(ctx context.Context) error {
	records, err := s.roster.List(ctx)
	if err != nil {
		return err
	}
	summary, err := s.roster.Summary(ctx)
	if err != nil {
		return err
	}
	s.render.table(records, summary)
	return s.pause(ctx)
}

func (s *Shell) handleClear(ctx context.Context) error {
	removed, err := s.roster.Clear(ctx)
	if err != nil {
		return err
	}
	s.metrics.RecordClear()
	s.logger.Info("roster cleared", zap.Int("removed", removed))

	s.render.blankLines(s.opts.ClearLines)
	s.render.line("Todos los datos han sido eliminados.\n")
	return s.pause(ctx)
}

func (s *Shell) reject(ctx context.Context, field string, cause error) error {
	s.metrics.RecordRejected()
	s.logger.Debug("input rejected", zap.String("field", field), zap.Error(cause))

	if field == "name" {
		s.render.line("El nombre no puede estar vacío.")
	} else {
		s.render.line("Debe ingresar un salario válido y mayor que 0.")
	}
	return s.pause(ctx)
}

func (s *Shell) pause(ctx context.Context) error {
	if !s.opts.Pause {
		return nil
	}
	s.render.line("\nPresiona Enter para volver al menú...")
	_, err := s.in.readLine(ctx)
	return err
}

// endOfInput treats exhausted input as a normal end of session.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
