package calendar

import (
	"context"
	"fmt"
	"time"

	"slotwise/models"
	"slotwise/services/availability"
	"slotwise/utils"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleBusyTimeProvider queries the Google Calendar freebusy API for a
// provider's selected sub-calendars. Token refresh happens in the connection
// flow; the account's access token is assumed valid here.
type GoogleBusyTimeProvider struct{}

// NewGoogleBusyTimeProvider constructs the production busy-time provider.
func NewGoogleBusyTimeProvider() *GoogleBusyTimeProvider {
	return &GoogleBusyTimeProvider{}
}

func (g *GoogleBusyTimeProvider) BusyTimes(ctx context.Context, account *models.CalendarAccount, from, to time.Time) ([]availability.TimeRange, error) {
	if account == nil || account.AccessToken == "" {
		return nil, nil
	}
	logger := utils.GetLogger()

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: account.AccessToken})
	svc, err := gcal.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	calendarIDs := account.CalendarIDs
	if len(calendarIDs) == 0 {
		calendarIDs = []string{"primary"}
	}
	items := make([]*gcal.FreeBusyRequestItem, 0, len(calendarIDs))
	for _, id := range calendarIDs {
		items = append(items, &gcal.FreeBusyRequestItem{Id: id})
	}

	resp, err := svc.Freebusy.Query(&gcal.FreeBusyRequest{
		TimeMin: from.Format(time.RFC3339),
		TimeMax: to.Format(time.RFC3339),
		Items:   items,
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("freebusy query failed: %w", err)
	}

	var busy []availability.TimeRange
	for calID, cal := range resp.Calendars {
		for _, e := range cal.Errors {
			logger.Warn("freebusy calendar error",
				zap.String("calendarId", calID), zap.String("reason", e.Reason))
		}
		for _, p := range cal.Busy {
			start, err := time.Parse(time.RFC3339, p.Start)
			if err != nil {
				logger.Warn("skipping busy period with bad start",
					zap.String("calendarId", calID), zap.String("start", p.Start))
				continue
			}
			end, err := time.Parse(time.RFC3339, p.End)
			if err != nil {
				logger.Warn("skipping busy period with bad end",
					zap.String("calendarId", calID), zap.String("end", p.End))
				continue
			}
			busy = append(busy, availability.TimeRange{Start: start, End: end})
		}
	}
	return busy, nil
}
