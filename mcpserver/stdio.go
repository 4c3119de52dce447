package mcpserver

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// ──────────────────────────────────────────────
// Stdio transport — newline-delimited JSON
// ──────────────────────────────────────────────

// stdioBufferSize sizes the line reader; a plain bufio.Scanner would cap
// lines at 64K.
const stdioBufferSize = 1024 * 1024

// ServeStdio reads newline-delimited JSON-RPC requests from r and writes one
// response line per non-notification request to w. It returns nil on EOF and
// the context error on cancellation. Blank lines are skipped; anything the
// server would log goes to the zap logger, never to w.
func (s *Server) ServeStdio(ctx context.Context, r io.Reader, w io.Writer) error {
	reader := bufio.NewReaderSize(r, stdioBufferSize)
	writer := bufio.NewWriter(w)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := reader.ReadBytes('\n')
		if len(bytes.TrimSpace(line)) > 0 {
			if werr := s.handleLine(ctx, bytes.TrimSpace(line), writer); werr != nil {
				return werr
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Info("stdio stream closed")
				return nil
			}
			return fmt.Errorf("mcpserver: stdio read: %w", err)
		}
	}
}

func (s *Server) handleLine(ctx context.Context, line []byte, w *bufio.Writer) error {
	resp := s.Handle(ctx, line)
	if resp == nil {
		return nil // notification
	}
	if _, err := w.Write(append(resp, '\n')); err != nil {
		return fmt.Errorf("mcpserver: stdio write: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("mcpserver: stdio flush: %w", err)
	}
	s.logger.Debug("stdio response written", zap.Int("bytes", len(resp)))
	return nil
}
