// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gate

import (
	"fmt"
	"strings"

	"github.com/poiesic/curator/core"
	"github.com/poiesic/curator/policy"
)

// LicenseGate decides whether a record's license admits it into the
// pipeline. Evaluation is deterministic and side-effect free.
type LicenseGate struct {
	allowed    []string
	rejected   []string
	exceptions []policy.DomainException
}

// NewLicenseGate builds a gate from the loaded policy.
func NewLicenseGate(p *policy.Policy) *LicenseGate {
	return &LicenseGate{
		allowed:    p.Licenses.Allowed,
		rejected:   p.Licenses.Rejected,
		exceptions: p.Licenses.DomainExceptions,
	}
}

// Evaluate returns the license decision for a record. A license on the
// allowlist admits the record; one on the denylist rejects it
// terminally. A missing or unrecognized license is admitted only when
// the source domain carries an exception, at reduced confidence.
func (g *LicenseGate) Evaluate(record *core.ContentRecord) core.LicenseDecision {
	license := strings.TrimSpace(record.License)

	if license != "" {
		if match := findLicense(g.rejected, license); match != "" {
			return core.LicenseDecision{
				Allowed:    false,
				License:    license,
				Reason:     fmt.Sprintf("license %q is on the denylist", license),
				Confidence: 1.0,
				Violations: []string{fmt.Sprintf("denylisted license: %s", match)},
			}
		}
		if match := findLicense(g.allowed, license); match != "" {
			return core.LicenseDecision{
				Allowed:    true,
				License:    license,
				Reason:     fmt.Sprintf("license %q is on the allowlist", license),
				Confidence: 1.0,
			}
		}
	}

	domain := strings.ToLower(strings.TrimSpace(record.SourceDomain))
	for _, exception := range g.exceptions {
		if domainMatches(domain, exception.Domain) {
			return core.LicenseDecision{
				Allowed:    true,
				License:    license,
				Reason:     fmt.Sprintf("domain exception for %s: %s", exception.Domain, exception.Reason),
				Confidence: 0.8,
			}
		}
	}

	return core.LicenseDecision{
		Allowed:    false,
		License:    license,
		Reason:     "unknown license",
		Confidence: 1.0,
		Violations: []string{"no admissible license declared"},
	}
}

// findLicense matches a declared license against a policy list,
// case-insensitively, and returns the matching list entry.
func findLicense(list []string, license string) string {
	for _, entry := range list {
		if strings.EqualFold(entry, license) {
			return entry
		}
	}
	return ""
}

// domainMatches reports whether domain equals pattern or is a
// subdomain of it.
func domainMatches(domain, pattern string) bool {
	pattern = strings.ToLower(pattern)
	return domain == pattern || strings.HasSuffix(domain, "."+pattern)
}
