package service

import (
	pkglogger "github.com/atareao/bloc/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 부가 단계 이름
const (
	StepTagUpsert       = "tag_upsert"
	StepTagAssign       = "tag_assign"
	StepPostTagCleanup  = "post_tag_cleanup"
	StepCommentCleanup  = "comment_cleanup"
	StepTagLinkCleanup  = "tag_link_cleanup"
	StepSettingCacheSet = "setting_cache"
	StepUploadRollback  = "upload_rollback"
)

// SecondaryStepFailures 본 작업은 성공했지만 뒤따르는 단계가 실패한 횟수
var SecondaryStepFailures = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "bloc_secondary_step_failures_total",
		Help: "Best-effort follow-up steps that failed after the primary write succeeded",
	},
	[]string{"step"},
)

// secondaryFailed logs and counts a failed best-effort step
func secondaryFailed(step string, err error, id int64) {
	SecondaryStepFailures.WithLabelValues(step).Inc()
	pkglogger.GetLogger().Warn().
		Err(err).
		Str("step", step).
		Int64("id", id).
		Msg("secondary step failed")
}
