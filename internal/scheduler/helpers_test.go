package scheduler

import "github.com/alexanderramin/confplan/internal/domain"

func clk(s string) domain.Clock { return domain.MustParseClock(s) }

func sess(title, start, end string) domain.Session {
	return domain.Session{Title: title, Start: clk(start), End: clk(end)}
}
