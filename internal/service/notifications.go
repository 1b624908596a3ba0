package service

import (
	"context"
	"fmt"

	"github.com/jask/basket/internal/database/repository"
	"github.com/jask/basket/internal/notify"
)

// NotificationService serves the alerts tab.
type NotificationService struct {
	Notifications *repository.NotificationRepo
}

// Feed is the alerts feed after the settings filter.
type Feed struct {
	Items  []notify.Notification
	Unread int
}

// Feed returns the notifications allowed by prefs and their unread count.
func (s *NotificationService) Feed(ctx context.Context, prefs notify.Prefs) (Feed, error) {
	all, err := s.Notifications.List(ctx)
	if err != nil {
		return Feed{}, fmt.Errorf("load notifications: %w", err)
	}
	visible := notify.Visible(all, prefs)
	return Feed{Items: visible, Unread: notify.UnreadCount(visible)}, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	return s.mutate(ctx, func(ns []notify.Notification) []notify.Notification {
		return notify.MarkRead(ns, id)
	})
}

func (s *NotificationService) MarkAllRead(ctx context.Context) error {
	return s.mutate(ctx, notify.MarkAllRead)
}

// Delete removes a notification. Unknown ids are ignored.
func (s *NotificationService) Delete(ctx context.Context, id string) error {
	return s.mutate(ctx, func(ns []notify.Notification) []notify.Notification {
		return notify.Delete(ns, id)
	})
}

// mutate applies op to the whole feed, not only the visible part, so hidden
// types keep their state.
func (s *NotificationService) mutate(ctx context.Context, op func([]notify.Notification) []notify.Notification) error {
	all, err := s.Notifications.List(ctx)
	if err != nil {
		return fmt.Errorf("load notifications: %w", err)
	}
	if err := s.Notifications.Replace(ctx, op(all)); err != nil {
		return fmt.Errorf("update notifications: %w", err)
	}
	return nil
}
