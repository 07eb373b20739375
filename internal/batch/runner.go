package batch

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/campus-idm/ldapbatch/internal/account"
)

// Success outcome strings; downstream tooling matches on them.
const (
	outcomeCreated = "SUCCESS: User added to ldap"
	outcomeUpdated = "SUCCESS: User updated in ldap"
	outcomeDeleted = "SUCCESS: User deleted from ldap"

	outcomeUnrecognized = "ERROR: Unrecognized action"
)

// Result is one output row of the batch report: the record's action and
// username verbatim, plus the outcome.
type Result struct {
	Action   string
	Username string
	Outcome  string
}

// Runner applies action records sequentially. One bad record never
// stops processing of subsequent records; every record yields exactly
// one result, in input order.
type Runner struct {
	proc *account.Processor
	log  *slog.Logger
}

// NewRunner creates a runner over the given processor.
func NewRunner(proc *account.Processor, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		proc: proc,
		log:  logger,
	}
}

// Run processes the records and returns one result per record.
func (r *Runner) Run(records []ActionRecord) []Result {
	log := r.log.With("run_id", uuid.NewString())
	log.Info("starting batch", "records", len(records))

	results := make([]Result, 0, len(records))
	for i, rec := range records {
		log.Info("processing record",
			"index", i, "action", rec.Action, "username", rec.Username)

		outcome := r.apply(log, rec)

		log.Info("record processed",
			"index", i, "action", rec.Action, "username", rec.Username,
			"result", outcome)

		results = append(results, Result{
			Action:   rec.Action,
			Username: rec.Username,
			Outcome:  outcome,
		})
	}

	log.Info("batch finished", "records", len(results))
	return results
}

// apply dispatches one record by action kind and renders its outcome.
func (r *Runner) apply(log *slog.Logger, rec ActionRecord) string {
	var err error
	var success string

	switch rec.Action {
	case "create":
		err = r.proc.Create(rec.record())
		success = outcomeCreated
	case "update":
		err = r.proc.Update(rec.record())
		success = outcomeUpdated
	case "delete":
		err = r.proc.Delete(rec.record())
		success = outcomeDeleted
	default:
		log.Error("unrecognized action", "action", rec.Action, "username", rec.Username)
		return outcomeUnrecognized
	}

	if err != nil {
		var recErr *account.Error
		if errors.As(err, &recErr) {
			return recErr.Outcome()
		}
		return "ERROR: " + err.Error()
	}
	return success
}
