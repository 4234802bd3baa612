package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ChaosChain/fin-studio-sub002/internal/archive"
	"github.com/ChaosChain/fin-studio-sub002/internal/consensus"
	"github.com/ChaosChain/fin-studio-sub002/internal/escrow"
	"github.com/ChaosChain/fin-studio-sub002/internal/identity"
	"github.com/ChaosChain/fin-studio-sub002/internal/provenance"
	"github.com/ChaosChain/fin-studio-sub002/internal/reputation"
	"github.com/ChaosChain/fin-studio-sub002/internal/settlement"
)

// #region bundle

// contribution is one worker's output plus the reviewer judgments on it.
type contribution struct {
	ContributorID  string                     `json:"contributor_id"`
	Name           string                     `json:"name"`
	ComponentType  provenance.ComponentType   `json:"component_type"`
	ResultPayload  string                     `json:"result_payload"`
	DataSourceRefs []string                   `json:"data_source_refs,omitempty"`
	Reasoning      string                     `json:"reasoning,omitempty"`
	ParentNodeIDs  []string                   `json:"parent_node_ids,omitempty"`
	StartedAt      time.Time                  `json:"started_at"`
	CompletedAt    time.Time                  `json:"completed_at"`
	Judgments      []consensus.ReviewJudgment `json:"judgments"`
}

// taskBundle is the coordinator's input: a completed task ready for
// review, reputation update and settlement.
type taskBundle struct {
	TaskID        string             `json:"task_id"`
	Contributions []contribution     `json:"contributions"`
	Settlement    settlement.Request `json:"settlement"`
}

// #endregion bundle

// #region main

func main() {
	bundlePath := flag.String("bundle", "-", "task bundle JSON file, - for stdin")
	flag.Parse()

	dbPath := envOr("FIN_ARCHIVE_DB", "fin_archive.db")
	escrowAddr := envOr("ESCROW_ADDR", "localhost:50061")
	seedHex := os.Getenv("SIGNER_SEED")

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	seed, err := hex.DecodeString(seedHex)
	if err != nil || len(seed) == 0 {
		log.Fatal("SIGNER_SEED must be set to a hex-encoded seed of at least 32 bytes")
	}
	signer, err := identity.NewSigner(seed)
	if err != nil {
		log.Fatalf("signer: %v", err)
	}

	store, err := archive.NewStore(dbPath)
	if err != nil {
		log.Fatalf("open archive: %v", err)
	}
	defer store.Close()

	escrowClient, err := escrow.NewClient(escrowAddr)
	if err != nil {
		log.Fatalf("connect to escrow at %s: %v", escrowAddr, err)
	}
	defer escrowClient.Close()

	ledger := provenance.NewLedger()
	repEngine := reputation.NewEngine(reputation.DefaultConfig())
	settleEngine, err := settlement.NewEngine(settlement.DefaultConfig(), escrowClient, signer, log)
	if err != nil {
		log.Fatalf("settlement engine: %v", err)
	}

	bundle, err := readBundle(*bundlePath)
	if err != nil {
		log.Fatalf("read bundle: %v", err)
	}

	resp, err := runTask(log, bundle, ledger, signer, repEngine, settleEngine, store)
	if err != nil {
		log.Fatalf("task %s: %v", bundle.TaskID, err)
	}

	out, _ := json.MarshalIndent(resp, "", "  ")
	fmt.Println(string(out))
}

// #endregion main

// #region run-task

// runTask drives the full chain for one bundle: signed provenance
// records, consensus per contribution, reputation updates, then
// settlement, with the payment record and reputation snapshots archived.
func runTask(
	log *logrus.Logger,
	bundle taskBundle,
	ledger *provenance.Ledger,
	signer *identity.Signer,
	repEngine *reputation.Engine,
	settleEngine *settlement.Engine,
	store *archive.Store,
) (settlement.Response, error) {
	ledger.SetCurrentTask(bundle.TaskID)

	for _, c := range bundle.Contributions {
		node := provenance.ContributionNode{
			ID:             uuid.New().String(),
			ContributorID:  c.ContributorID,
			TaskID:         bundle.TaskID,
			ComponentType:  c.ComponentType,
			Timestamp:      c.CompletedAt.UTC(),
			ResultPayload:  c.ResultPayload,
			DataSourceRefs: c.DataSourceRefs,
			Reasoning:      c.Reasoning,
			ParentNodeIDs:  c.ParentNodeIDs,
		}
		sig, err := signer.SignNode(node)
		if err != nil {
			return settlement.Response{}, fmt.Errorf("sign node for %s: %w", c.ContributorID, err)
		}
		node.Signature = sig

		if err := ledger.AddNode(node); err != nil {
			return settlement.Response{}, fmt.Errorf("add node for %s: %w", c.ContributorID, err)
		}

		accepted := consensus.IsAccepted(c.Judgments)
		rep, err := repEngine.UpdateReputation(c.ContributorID, c.Name, c.Judgments, c.StartedAt, c.CompletedAt)
		if err != nil {
			return settlement.Response{}, fmt.Errorf("update reputation for %s: %w", c.ContributorID, err)
		}
		if err := store.SnapshotReputation(rep); err != nil {
			log.WithError(err).Warn("reputation snapshot failed")
		}

		log.WithFields(logrus.Fields{
			"contributor": c.ContributorID,
			"node":        node.ID,
			"accepted":    accepted,
			"score":       rep.ReputationScore,
		}).Info("contribution recorded")
	}

	req := bundle.Settlement
	req.TaskID = bundle.TaskID

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	resp, err := settleEngine.HandleRequest(ctx, req)
	if err != nil {
		return settlement.Response{}, fmt.Errorf("settlement: %w", err)
	}
	if err := store.SavePayment(resp.Payment); err != nil {
		log.WithError(err).Warn("payment archive failed")
	}
	return resp, nil
}

// #endregion run-task

// #region helpers

func readBundle(path string) (taskBundle, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return taskBundle{}, err
	}
	var bundle taskBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return taskBundle{}, fmt.Errorf("parse bundle: %w", err)
	}
	if bundle.TaskID == "" || len(bundle.Contributions) == 0 {
		return taskBundle{}, fmt.Errorf("bundle needs a task id and at least one contribution")
	}
	return bundle, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
