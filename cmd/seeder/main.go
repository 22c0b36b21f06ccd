package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/poiesic/curator"
	"github.com/poiesic/curator/core"
)

// samples are built-in records covering every pipeline outcome: clean
// approvals, a license rejection, a risky item and a near-duplicate.
var samples = []*core.ContentRecord{
	{
		Title: "In Search of an Understandable Consensus Algorithm",
		URL:   "https://arxiv.org/abs/1409.0001",
		Body: "Raft is a consensus algorithm for managing a replicated log. " +
			"It produces a result equivalent to multi-Paxos and is as efficient, " +
			"but its structure decomposes consensus into leader election, log " +
			"replication and safety. The paper reports benchmark measurements " +
			"showing that Raft is easier for students to understand than Paxos.",
		Author:       "D. Ongaro",
		SourceDomain: "arxiv.org",
		SourceName:   "arXiv",
		ContentType:  "paper",
		Tags:         []string{"consensus", "distributed-systems"},
		License:      "CC-BY-4.0",
		PublishedAt:  time.Now().Add(-96 * time.Hour),
	},
	{
		Title: "Understanding B-tree page splits",
		URL:   "https://lwn.net/Articles/btree-splits",
		Body: "A B-tree keeps keys sorted inside fixed size pages. When an " +
			"insert overflows a page the tree splits it in two and promotes the " +
			"median key. This article walks through the split algorithm with " +
			"measurements of page fill factors under random and sequential load.",
		Author:       "J. Corbet",
		SourceDomain: "lwn.net",
		SourceName:   "LWN",
		ContentType:  "blog",
		Tags:         []string{"databases", "storage"},
		License:      "CC-BY-SA-4.0",
		PublishedAt:  time.Now().Add(-24 * time.Hour),
	},
	{
		Title: "Vector clocks and causality tracking",
		URL:   "https://en.wikipedia.org/wiki/Vector_clock",
		Body: "A vector clock is a data structure for determining the partial " +
			"ordering of events in a distributed system. Each process keeps a " +
			"vector of logical clocks, one per process, and increments its own " +
			"entry on every local event. Comparing vectors detects causality " +
			"violations without synchronized physical clocks.",
		SourceDomain: "en.wikipedia.org",
		SourceName:   "Wikipedia",
		ContentType:  "docs",
		Tags:         []string{"distributed-systems"},
		License:      "CC-BY-SA-4.0",
		PublishedAt:  time.Now().Add(-240 * time.Hour),
	},
	{
		Title: "Exclusive industry report on cloud spending",
		URL:   "https://random.blog/cloud-report-2025",
		Body: "You won't believe what enterprises spend on cloud infrastructure. " +
			"This shocking report breaks down budgets by sector.",
		SourceDomain: "random.blog",
		ContentType:  "news",
		License:      "All Rights Reserved",
		PublishedAt:  time.Now().Add(-12 * time.Hour),
	},
	{
		Title: "Ransomware group retools with new backdoor",
		URL:   "https://news.ycombinator.com/threat-report",
		Body: "The ransomware operators shipped a new backdoor alongside their " +
			"usual credential stuffing tooling. Analysts observed the malware " +
			"deploying a keylogger and a rootkit on compromised hosts.",
		SourceDomain: "news.ycombinator.com",
		ContentType:  "news",
		Tags:         []string{"security"},
		License:      "MIT",
		PublishedAt:  time.Now().Add(-6 * time.Hour),
	},
	{
		Title: "Consensus made understandable: the Raft protocol",
		URL:   "https://random.blog/raft-rehash",
		Body: "Raft is a consensus algorithm for managing a replicated log. " +
			"It produces a result equivalent to multi-Paxos and is as efficient, " +
			"but its structure decomposes consensus into leader election, log " +
			"replication and safety. The paper reports benchmark measurements " +
			"showing that Raft is easier for students to understand than Paxos.",
		SourceDomain: "random.blog",
		ContentType:  "blog",
		License:      "CC-BY-4.0",
		PublishedAt:  time.Now().Add(-2 * time.Hour),
	},
}

var (
	dbPath       = flag.String("db", "./curator_db", "path to the database directory")
	seedFileName = flag.String("src", "", "JSON file of seed records")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

// recordsFromFile loads a JSON array of content records.
func recordsFromFile(filename string) ([]*core.ContentRecord, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var records []*core.ContentRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func main() {
	c, err := curator.New(context.Background(), *dbPath)
	if err != nil {
		panic(err)
	}
	defer c.Close()

	records := samples
	if *seedFileName != "" {
		records, err = recordsFromFile(*seedFileName)
		if err != nil {
			panic(err)
		}
	}

	report, err := c.Ingest(context.Background(), records)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Seeded %d records: %d queued, %d license-rejected, %d duplicates, %d invalid, %d failed\n",
		report.Processed, report.Queued, report.LicenseRejected,
		report.Duplicates, report.Invalid, report.Failed)
	for _, result := range report.Results {
		fmt.Printf("%d: [%s] %s\n", result.Key, result.Outcome, result.URL)
	}
}
