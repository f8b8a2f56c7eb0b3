package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/codeAntu/battle-zone-sub000/internal/domain"
	"github.com/codeAntu/battle-zone-sub000/internal/models"
	"github.com/codeAntu/battle-zone-sub000/internal/repository"
	"github.com/codeAntu/battle-zone-sub000/internal/service"
	"github.com/codeAntu/battle-zone-sub000/internal/testutil"

	"gorm.io/gorm"
)

func validInput() service.TournamentInput {
	return service.TournamentInput{
		Game:            domain.GameBGMI,
		Name:            "Friday Night Battle",
		Description:     "Squad match",
		EntryFee:        10,
		Prize:           100,
		PerKillPrize:    5,
		MaxParticipants: 48,
		ScheduledAt:     time.Now().Add(24 * time.Hour),
	}
}

func newTournamentService(t *testing.T) (*service.TournamentService, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	return service.NewTournamentService(repository.NewTournamentRepository(db)), db
}

func TestCreateTournament(t *testing.T) {
	svc, db := newTournamentService(t)
	admin := testutil.CreateAdmin(t, db, "admin@test.io")

	tr, err := svc.Create(admin.ID, validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if tr.CurrentParticipants != 0 || tr.IsEnded {
		t.Errorf("new tournament = %+v, want 0 participants and not ended", tr)
	}
	if tr.AdminID != admin.ID {
		t.Errorf("admin id = %d, want %d", tr.AdminID, admin.ID)
	}
}

func TestCreateTournament_Validation(t *testing.T) {
	svc, db := newTournamentService(t)
	admin := testutil.CreateAdmin(t, db, "admin@test.io")

	cases := []struct {
		name   string
		mutate func(*service.TournamentInput)
		want   error
	}{
		{"past schedule", func(in *service.TournamentInput) { in.ScheduledAt = time.Now().Add(-time.Minute) }, domain.ErrPastSchedule},
		{"unknown game", func(in *service.TournamentInput) { in.Game = "FORTNITE" }, domain.ErrUnknownGame},
		{"zero capacity", func(in *service.TournamentInput) { in.MaxParticipants = 0 }, domain.ErrInvalidCapacity},
		{"negative fee", func(in *service.TournamentInput) { in.EntryFee = -1 }, domain.ErrInvalidAmount},
		{"negative prize", func(in *service.TournamentInput) { in.Prize = -1 }, domain.ErrInvalidAmount},
		{"empty name", func(in *service.TournamentInput) { in.Name = "" }, domain.ErrNameRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			if _, err := svc.Create(admin.ID, in); !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestUpdateTournament_RejectedOnceEnded(t *testing.T) {
	svc, db := newTournamentService(t)
	admin := testutil.CreateAdmin(t, db, "admin@test.io")
	tr, _ := svc.Create(admin.ID, validInput())

	db.Model(&models.Tournament{}).Where("id = ?", tr.ID).Update("is_ended", true)

	if _, err := svc.Update(tr.ID, validInput()); !errors.Is(err, domain.ErrTournamentEnded) {
		t.Errorf("update err = %v, want ErrTournamentEnded", err)
	}
	if _, err := svc.SetRoom(tr.ID, "54321", "secret"); !errors.Is(err, domain.ErrTournamentEnded) {
		t.Errorf("set room err = %v, want ErrTournamentEnded", err)
	}
}

func TestSetRoom(t *testing.T) {
	svc, db := newTournamentService(t)
	admin := testutil.CreateAdmin(t, db, "admin@test.io")
	tr, _ := svc.Create(admin.ID, validInput())

	updated, err := svc.SetRoom(tr.ID, "54321", "secret")
	if err != nil {
		t.Fatalf("set room: %v", err)
	}
	if updated.RoomID != "54321" || updated.RoomPassword != "secret" {
		t.Errorf("room = %q/%q, want 54321/secret", updated.RoomID, updated.RoomPassword)
	}
}

func TestListTournaments_Filters(t *testing.T) {
	svc, db := newTournamentService(t)
	admin := testutil.CreateAdmin(t, db, "admin@test.io")

	in := validInput()
	svc.Create(admin.ID, in)
	in.Game = domain.GameFreeFire
	ff, _ := svc.Create(admin.ID, in)
	db.Model(&models.Tournament{}).Where("id = ?", ff.ID).Update("is_ended", true)

	open, total, err := svc.List("", false, 1, 20)
	if err != nil {
		t.Fatalf("list open: %v", err)
	}
	if total != 1 || len(open) != 1 || open[0].Game != domain.GameBGMI {
		t.Errorf("open list = %+v (total %d), want one BGMI tournament", open, total)
	}
	history, total, err := svc.List(domain.GameFreeFire, true, 1, 20)
	if err != nil {
		t.Fatalf("list history: %v", err)
	}
	if total != 1 || len(history) != 1 || !history[0].IsEnded {
		t.Errorf("history list = %+v (total %d), want one ended FREEFIRE tournament", history, total)
	}
}

func TestGetTournament_NotFound(t *testing.T) {
	svc, _ := newTournamentService(t)
	if _, err := svc.Get(9999); !errors.Is(err, domain.ErrTournamentNotFound) {
		t.Errorf("err = %v, want ErrTournamentNotFound", err)
	}
}
