package service

import (
	"bbl-admins-portal/internal/auth"
	"bbl-admins-portal/internal/repo"

	"go.uber.org/zap"
)

// fakeNotifier records the mails that would have been sent.
type fakeNotifier struct {
	shipmentCreated []string
	statusChanged   []string
	invites         []string
	readyEmails     []string
	approvedEmails  []string
	auctionWinners  []string
}

func (n *fakeNotifier) ShipmentCreated(email, trackingId string) {
	n.shipmentCreated = append(n.shipmentCreated, email)
}

func (n *fakeNotifier) ShipmentStatusChanged(email, trackingId, status string) {
	n.statusChanged = append(n.statusChanged, email+":"+status)
}

func (n *fakeNotifier) SetPasswordInvite(email, link string) {
	n.invites = append(n.invites, email+":"+link)
}

func (n *fakeNotifier) ReadyForApproval(email string) {
	n.readyEmails = append(n.readyEmails, email)
}

func (n *fakeNotifier) AdminApproved(email string) {
	n.approvedEmails = append(n.approvedEmails, email)
}

func (n *fakeNotifier) AuctionWon(email, itemName string) {
	n.auctionWinners = append(n.auctionWinners, email+":"+itemName)
}

// testHasherParams keeps argon2 cheap enough for unit tests.
var testHasherParams = &auth.Argon2Params{
	Memory:      1024,
	Iterations:  1,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

type testEnv struct {
	repos    *repo.Repositories
	services *Services
	notifier *fakeNotifier
}

func newTestEnv() *testEnv {
	repos := repo.NewMemoryRepositories()
	notifier := &fakeNotifier{}
	services := NewServices(Deps{
		Repos:    repos,
		Hasher:   auth.NewArgon2Hasher(testHasherParams),
		Notifier: notifier,
		Logger:   zap.NewNop(),
	})

	return &testEnv{repos: repos, services: services, notifier: notifier}
}
