package worker

import (
	"log"
	"time"

	"github.com/codeAntu/battle-zone-sub000/internal/models"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

// Reconciler periodically audits open tournaments: current_participants must
// equal the count of participant rows. Drift means a bug or manual data edit;
// it is logged and repaired from the participant table, which is the source
// of truth.
type Reconciler struct {
	db       *gorm.DB
	interval time.Duration
	sched    gocron.Scheduler
}

func NewReconciler(db *gorm.DB, interval time.Duration) *Reconciler {
	return &Reconciler{db: db, interval: interval}
}

func (r *Reconciler) Start() error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	if _, err := sched.NewJob(
		gocron.DurationJob(r.interval),
		gocron.NewTask(r.run),
	); err != nil {
		return err
	}
	sched.Start()
	r.sched = sched
	return nil
}

func (r *Reconciler) Stop() {
	if r.sched != nil {
		_ = r.sched.Shutdown()
	}
}

func (r *Reconciler) run() {
	var tournaments []models.Tournament
	if err := r.db.Where("is_ended = ?", false).Find(&tournaments).Error; err != nil {
		log.Printf("[reconciler] DB error: %v", err)
		return
	}
	for _, t := range tournaments {
		var count int64
		if err := r.db.Model(&models.Participant{}).Where("tournament_id = ?", t.ID).Count(&count).Error; err != nil {
			log.Printf("[reconciler] count failed for tournament %d: %v", t.ID, err)
			continue
		}
		if int(count) == t.CurrentParticipants {
			continue
		}
		log.Printf("[reconciler] tournament %d participant drift: stored %d, actual %d",
			t.ID, t.CurrentParticipants, count)
		err := r.db.Model(&models.Tournament{}).
			Where("id = ? AND is_ended = ?", t.ID, false).
			Update("current_participants", count).Error
		if err != nil {
			log.Printf("[reconciler] repair failed for tournament %d: %v", t.ID, err)
		}
	}
}
