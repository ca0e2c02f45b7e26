package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gridiron-sim/internal/app/careers"
	"gridiron-sim/internal/archive"
	"gridiron-sim/internal/config"
	"gridiron-sim/internal/logging"
	"gridiron-sim/internal/metrics"
	"gridiron-sim/internal/sim/career"
	"gridiron-sim/internal/sim/league"
	"gridiron-sim/internal/sim/season"
	"gridiron-sim/internal/snapshots"
	"gridiron-sim/internal/timeutil"
)

// simulator runs one full league cycle per runner tick and fans the results
// out to the career service, snapshot writer, and optional sqlite archive.
type simulator struct {
	cfg     config.SimConfig
	careers *careers.Service
	writer  *snapshots.Writer
	archive *archive.Store
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

func newSimulator(cfg config.SimConfig, careerSvc *careers.Service, writer *snapshots.Writer, arch *archive.Store, logger *slog.Logger, recorder *metrics.Recorder) *simulator {
	return &simulator{
		cfg:     cfg,
		careers: careerSvc,
		writer:  writer,
		archive: arch,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

// run executes one cycle. A configured base seed advances by one per cycle so
// repeated runs stay reproducible without replaying the identical season.
func (s *simulator) run(ctx context.Context, seq int64) (*season.Summary, error) {
	seed := s.cfg.Seed
	if seed != 0 {
		seed += seq - 1
	}

	res, err := league.Run(league.Config{
		Seed:      seed,
		Weeks:     s.cfg.Weeks,
		Size:      s.cfg.LeagueSize,
		Prospects: s.cfg.CareerCohort,
	})
	if err != nil {
		return nil, fmt.Errorf("league cycle %d: %w", seq, err)
	}

	if s.careers != nil {
		s.careers.Replace(res.Careers)
	}
	s.recordCareers(res.Careers)
	s.snapshotCareers(seq, res.Careers)
	s.archiveResult(ctx, res)

	return res.Summary, nil
}

func (s *simulator) recordCareers(states []*career.State) {
	if s.metrics == nil {
		return
	}
	for _, st := range states {
		for range st.HighSchoolYears {
			s.metrics.RecordCareerAdvance(string(career.StageHighSchool))
		}
		for range st.CollegeYears {
			s.metrics.RecordCareerAdvance(string(career.StageCollege))
		}
		for range st.NFLYears {
			s.metrics.RecordCareerAdvance(string(career.StageNFL))
		}
	}
}

func (s *simulator) snapshotCareers(seq int64, states []*career.State) {
	if s.writer == nil || len(states) == 0 {
		return
	}
	label := fmt.Sprintf("%s-run-%06d", timeutil.FormatDate(s.now().UTC()), seq)
	if err := s.writer.WriteCareersSnapshot(label, states); err != nil {
		logging.Error(s.logger, "careers snapshot write failed", err)
	}
}

func (s *simulator) archiveResult(ctx context.Context, res *league.Result) {
	if s.archive == nil {
		return
	}
	if _, err := s.archive.SaveSeason(ctx, res.Summary); err != nil {
		logging.Error(s.logger, "season archive failed", err)
	}
	for _, st := range res.Careers {
		if err := s.archive.SaveCareer(ctx, st); err != nil {
			logging.Error(s.logger, "career archive failed", err,
				slog.String(logging.FieldCareerID, st.Player.ID))
		}
	}
}
