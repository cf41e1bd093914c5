// Package oracle runs the optional out-of-process scorer. The command
// receives a path to a JSON file holding the serialized transaction
// collection and must print the {insights, healthScore, success} envelope on
// stdout within the configured deadline and size limit. Any deviation is a
// typed error; the caller converts it into the demo fallback.
package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/smartfinance/smartfinance-go/pkg/smartfinance"
)

const (
	// DefaultTimeout bounds one oracle invocation.
	DefaultTimeout = 20 * time.Second

	// DefaultMaxOutputBytes caps the oracle's stdout.
	DefaultMaxOutputBytes = 1 << 20
)

// Options configures the command oracle.
type Options struct {
	Command        string
	Args           []string
	Timeout        time.Duration
	MaxOutputBytes int64
	Logger         zerolog.Logger
}

// CommandOracle implements smartfinance.Oracle by invoking an external
// scoring process per request.
type CommandOracle struct {
	command        string
	args           []string
	timeout        time.Duration
	maxOutputBytes int64
	logger         zerolog.Logger
}

// New creates a command oracle.
func New(opts Options) *CommandOracle {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxOutputBytes <= 0 {
		opts.MaxOutputBytes = DefaultMaxOutputBytes
	}
	return &CommandOracle{
		command:        opts.Command,
		args:           opts.Args,
		timeout:        opts.Timeout,
		maxOutputBytes: opts.MaxOutputBytes,
		logger:         opts.Logger,
	}
}

// Score serializes the transactions to a temp file, runs the scorer and
// decodes its envelope.
func (o *CommandOracle) Score(ctx context.Context, txns []smartfinance.Transaction) (*smartfinance.AnalysisResult, error) {
	payload, err := json.Marshal(txns)
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize transactions")
	}

	dir, err := os.MkdirTemp("", "smartfinance-oracle-*")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create oracle workspace")
	}
	defer os.RemoveAll(dir)

	inputPath := filepath.Join(dir, "transactions.json")
	if err := os.WriteFile(inputPath, payload, 0o600); err != nil {
		return nil, errors.Wrap(err, "failed to write oracle input")
	}

	runCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	args := append(append([]string{}, o.args...), inputPath)
	cmd := exec.CommandContext(runCtx, o.command, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err = cmd.Run()
	duration := time.Since(start)

	if runCtx.Err() == context.DeadlineExceeded {
		return nil, errors.Wrapf(smartfinance.ErrOracleTimeout, "after %s", o.timeout)
	}
	if err != nil {
		return nil, errors.Wrapf(smartfinance.ErrOracleFailed, "%v: %s", err, firstLine(stderr.String()))
	}
	if int64(stdout.Len()) > o.maxOutputBytes {
		return nil, errors.Wrapf(smartfinance.ErrOracleOutput, "response of %d bytes exceeds limit %d", stdout.Len(), o.maxOutputBytes)
	}

	result, err := ParseResult(stdout.Bytes())
	if err != nil {
		return nil, err
	}

	o.logger.Debug().
		Dur("duration", duration).
		Int("insights", len(result.Insights)).
		Msg("oracle scored snapshot")
	return result, nil
}

func firstLine(s string) string {
	if i := bytes.IndexByte([]byte(s), '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
