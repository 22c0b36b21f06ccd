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

package approval

import (
	"fmt"
	"strings"

	"github.com/poiesic/curator/core"
	"github.com/poiesic/curator/policy"
)

// Recommend synthesizes the verdict and the human-readable
// recommendation for an item entering the queue.
func Recommend(p *policy.Policy, record *core.ContentRecord, quality core.QualityScore, license core.LicenseDecision, risk core.RiskAssessment, nov core.NoveltyResult) (core.Verdict, string) {
	verdict := decideVerdict(p, quality, license, risk, nov)
	reasons := reasons(p, record, quality, license, risk, nov)
	return verdict, fmt.Sprintf("%s: %s", verdict, strings.Join(reasons, "; "))
}

func decideVerdict(p *policy.Policy, quality core.QualityScore, license core.LicenseDecision, risk core.RiskAssessment, nov core.NoveltyResult) core.Verdict {
	switch {
	case quality.Overall >= p.Approval.ApproveQuality && license.Allowed &&
		risk.Safe && nov.Score >= p.Approval.NoveltyBar:
		return core.VerdictApprove
	case quality.Overall >= p.Approval.ReviewQuality && license.Allowed &&
		(risk.Level == core.RiskLow || risk.Level == core.RiskMedium):
		return core.VerdictReview
	default:
		return core.VerdictReject
	}
}

func reasons(p *policy.Policy, record *core.ContentRecord, quality core.QualityScore, license core.LicenseDecision, risk core.RiskAssessment, nov core.NoveltyResult) []string {
	var reasons []string

	switch {
	case quality.Overall >= 0.8:
		reasons = append(reasons, fmt.Sprintf("excellent quality (%.2f)", quality.Overall))
	case quality.Overall >= 0.6:
		reasons = append(reasons, fmt.Sprintf("good quality (%.2f)", quality.Overall))
	default:
		reasons = append(reasons, fmt.Sprintf("low quality (%.2f)", quality.Overall))
	}

	if license.Allowed {
		reasons = append(reasons, "license clear")
	} else {
		reasons = append(reasons, "license problem: "+license.Reason)
	}

	switch risk.Level {
	case core.RiskLow:
		reasons = append(reasons, "low risk")
	case core.RiskMedium:
		reasons = append(reasons, "medium risk, review detections")
	default:
		reasons = append(reasons, fmt.Sprintf("%s risk (%d detections)", risk.Level, len(risk.Detections)))
	}

	switch {
	case nov.Score >= 0.7:
		reasons = append(reasons, "highly novel content")
	case nov.Score >= 0.3:
		reasons = append(reasons, "moderately novel content")
	default:
		reasons = append(reasons, fmt.Sprintf("similar content already indexed (%.2f)", nov.MaxSimilarity))
	}

	reputation := p.Quality.ReputationOf(record.SourceDomain)
	switch {
	case reputation >= 0.8:
		reasons = append(reasons, "highly reputable source")
	case reputation >= 0.5:
		reasons = append(reasons, "moderately reputable source")
	default:
		reasons = append(reasons, "low-reputation source")
	}

	return reasons
}
