package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/ChaosChain/fin-studio-sub002/internal/archive"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to fin_archive.db")
	last := flag.Int("last", 20, "show N most recent payments")
	task := flag.String("task", "", "show the payment for one task")
	contributor := flag.String("contributor", "", "show a contributor's reputation history")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/fin_archive.db [--last N] [--task id] [--contributor id] [--json]")
		os.Exit(2)
	}

	store, err := archive.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case *contributor != "":
		err = runReputationMode(store, *contributor, *last, *jsonOut)
	case *task != "":
		err = runTaskMode(store, *task, *jsonOut)
	default:
		err = runListMode(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

func runListMode(store *archive.Store, last int, jsonOut bool) error {
	records, err := store.ListPayments(last)
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(records)
	}

	fmt.Printf("%-36s  %-12s  %-26s  %5s  %12s  %s\n", "PAYMENT", "TASK", "MODE", "TXNS", "DISTRIBUTED", "OK")
	for _, rec := range records {
		fmt.Printf("%-36s  %-12s  %-26s  %5d  %12d  %v\n",
			rec.PaymentID, rec.TaskID, rec.Mode, rec.TransactionCount,
			rec.TotalDistributedMinorUnits, rec.Success)
	}
	return nil
}

// #endregion list-mode

// #region task-mode

func runTaskMode(store *archive.Store, taskID string, jsonOut bool) error {
	rec, err := store.PaymentByTask(taskID)
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(rec)
	}

	fmt.Printf("payment %s  task %s  mode %s\n", rec.PaymentID, rec.TaskID, rec.Mode)
	fmt.Printf("distributed %d  fee %d  residual %d  success %v\n",
		rec.TotalDistributedMinorUnits, rec.PlatformFeeMinorUnits, rec.ResidualMinorUnits, rec.Success)
	for _, entry := range rec.Entries {
		status := "failed"
		if entry.Completed {
			status = entry.TransactionID
		}
		fmt.Printf("  %-10s %-16s %12d  %s\n", entry.Role, entry.ContributorID, entry.AmountMinorUnits, status)
	}
	for _, msg := range rec.Errors {
		fmt.Printf("  ! %s\n", msg)
	}
	return nil
}

// #endregion task-mode

// #region reputation-mode

func runReputationMode(store *archive.Store, contributorID string, last int, jsonOut bool) error {
	history, err := store.ReputationHistory(contributorID, last)
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(history)
	}

	fmt.Printf("%-16s  %6s  %5s  %5s  %5s  %s\n", "CONTRIBUTOR", "SCORE", "TASKS", "ACC", "REJ", "TAGS")
	for _, rep := range history {
		fmt.Printf("%-16s  %6.3f  %5d  %5d  %5d  %v\n",
			rep.ContributorID, rep.ReputationScore, rep.TotalTasks,
			rep.AcceptedTasks, rep.RejectedTasks, rep.SpecialtyTags)
	}
	return nil
}

// #endregion reputation-mode

// #region helpers

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// #endregion helpers
