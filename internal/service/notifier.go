package service

import (
	"go.uber.org/zap"
)

// Notifier sends the portal's client and admin e-mails. The log
// implementation only simulates delivery; a real mail provider slots in
// behind the same interface.
type Notifier interface {
	ShipmentCreated(email, trackingId string)
	ShipmentStatusChanged(email, trackingId, status string)
	SetPasswordInvite(email, link string)
	ReadyForApproval(email string)
	AdminApproved(email string)
	AuctionWon(email, itemName string)
}

type logNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) Notifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) ShipmentCreated(email, trackingId string) {
	n.logger.Info("(simulated) sending 'Shipment Created' email",
		zap.String("email", email), zap.String("trackingId", trackingId))
}

func (n *logNotifier) ShipmentStatusChanged(email, trackingId, status string) {
	n.logger.Info("(simulated) sending 'Status Update' email",
		zap.String("email", email), zap.String("trackingId", trackingId), zap.String("status", status))
}

func (n *logNotifier) SetPasswordInvite(email, link string) {
	n.logger.Info("(simulated) sending 'Set Password' email",
		zap.String("email", email), zap.String("link", link))
}

func (n *logNotifier) ReadyForApproval(email string) {
	n.logger.Info("(simulated) sending 'Ready for Approval' email to the main admin",
		zap.String("invitee", email))
}

func (n *logNotifier) AdminApproved(email string) {
	n.logger.Info("(simulated) sending 'Admin Approval' email",
		zap.String("email", email))
}

func (n *logNotifier) AuctionWon(email, itemName string) {
	n.logger.Info("(simulated) sending 'Congratulations & Pay Now' email",
		zap.String("email", email), zap.String("item", itemName))
}
