package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	auditlogDomain "github.com/allisson/formrelay/internal/auditlog/domain"
	auditlogUseCase "github.com/allisson/formrelay/internal/auditlog/usecase"
)

// RunReadLogs decrypts and prints the last limit audit log entries.
// Unreadable lines are printed as placeholders and never abort the listing.
func RunReadLogs(
	ctx context.Context,
	auditLogUseCase auditlogUseCase.AuditLogUseCase,
	logger *slog.Logger,
	writer io.Writer,
	passphrase string,
	limit int,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	entries, err := auditLogUseCase.ReadAll(ctx, passphrase, limit)
	if err != nil {
		return fmt.Errorf("failed to read audit log: %w", err)
	}

	logger.Debug("audit log read", slog.Int("count", len(entries)))

	if format == FormatJSON {
		return outputLogsJSON(writer, entries)
	}

	outputLogsText(writer, entries)
	return nil
}

// outputLogsText prints one numbered line per entry.
func outputLogsText(writer io.Writer, entries []auditlogDomain.Entry) {
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(writer, "No log entries found.")
		return
	}

	_, _ = fmt.Fprintf(writer, "Decrypted log entries (%d):\n\n", len(entries))
	for i, entry := range entries {
		switch {
		case entry.Record != nil:
			r := entry.Record
			_, _ = fmt.Fprintf(writer, "#%d: [%s] %s", i+1, r.Timestamp.Format(time.RFC3339), r.Type)
			if r.Name != "" || r.Email != "" {
				_, _ = fmt.Fprintf(writer, " %s <%s>", r.Name, r.Email)
			}
			if r.Service != "" {
				_, _ = fmt.Fprintf(writer, " service=%s", r.Service)
			}
			if r.Error != "" {
				_, _ = fmt.Fprintf(writer, " error=%q", r.Error)
			}
			_, _ = fmt.Fprintln(writer)
		case entry.Failure == auditlogDomain.FailureParse:
			_, _ = fmt.Fprintf(writer, "#%d: %s\n", i+1, entry.Raw)
		default:
			_, _ = fmt.Fprintf(writer, "#%d: [decrypt failed]\n", i+1)
		}
	}
}

// outputLogsJSON prints the entries as a JSON array.
func outputLogsJSON(writer io.Writer, entries []auditlogDomain.Entry) error {
	if entries == nil {
		entries = []auditlogDomain.Entry{}
	}

	jsonBytes, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
	return nil
}
