package gate

import (
	"testing"

	"github.com/poiesic/curator/core"
	"github.com/poiesic/curator/policy"
)

func TestLicenseGate_Allowlist(t *testing.T) {
	g := NewLicenseGate(policy.Default())

	decision := g.Evaluate(&core.ContentRecord{
		License:      "cc-by-4.0",
		SourceDomain: "example.org",
	})
	if !decision.Allowed {
		t.Fatalf("Expected allowed, got %+v", decision)
	}
	if decision.Confidence != 1.0 {
		t.Fatalf("Expected full confidence, got %v", decision.Confidence)
	}
}

func TestLicenseGate_Denylist(t *testing.T) {
	g := NewLicenseGate(policy.Default())

	decision := g.Evaluate(&core.ContentRecord{
		License:      "All Rights Reserved",
		SourceDomain: "random.blog",
	})
	if decision.Allowed {
		t.Fatal("Expected rejection for denylisted license")
	}
	if len(decision.Violations) == 0 {
		t.Fatal("Expected a violation entry")
	}
}

func TestLicenseGate_DomainException(t *testing.T) {
	g := NewLicenseGate(policy.Default())

	decision := g.Evaluate(&core.ContentRecord{
		SourceDomain: "arxiv.org",
	})
	if !decision.Allowed {
		t.Fatalf("Expected domain exception to admit record, got %+v", decision)
	}
	if decision.Confidence != 0.8 {
		t.Fatalf("Expected reduced confidence 0.8, got %v", decision.Confidence)
	}

	// Subdomains inherit the exception
	decision = g.Evaluate(&core.ContentRecord{SourceDomain: "export.arxiv.org"})
	if !decision.Allowed {
		t.Fatal("Expected subdomain to inherit the exception")
	}
}

func TestLicenseGate_UnknownLicense(t *testing.T) {
	g := NewLicenseGate(policy.Default())

	decision := g.Evaluate(&core.ContentRecord{
		License:      "something-nobody-heard-of",
		SourceDomain: "random.blog",
	})
	if decision.Allowed {
		t.Fatal("Expected rejection for unknown license")
	}
	if decision.Reason != "unknown license" {
		t.Fatalf("Expected 'unknown license' reason, got %q", decision.Reason)
	}
}

func TestLicenseGate_DenylistBeatsException(t *testing.T) {
	g := NewLicenseGate(policy.Default())

	// A denylisted license on an excepted domain still rejects.
	decision := g.Evaluate(&core.ContentRecord{
		License:      "proprietary",
		SourceDomain: "arxiv.org",
	})
	if decision.Allowed {
		t.Fatal("Expected denylist to take precedence over domain exception")
	}
}
