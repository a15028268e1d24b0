package catalog

import (
	"github.com/alexanderramin/confplan/internal/domain"
)

// ConvertScheduleFile validates file and converts it to domain sections.
// All validation problems are returned together as ValidationErrors.
func ConvertScheduleFile(file *ScheduleFile) ([]domain.ScheduleSection, error) {
	if errs := ValidateScheduleFile(file); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	sections := make([]domain.ScheduleSection, 0, len(file.ConferenceSchedule))
	for _, rec := range file.ConferenceSchedule {
		sec := domain.ScheduleSection{
			Date:     rec.Date,
			Feature:  rec.Feature,
			Sessions: make([]domain.Session, 0, len(rec.Sessions)),
		}
		for _, s := range rec.Sessions {
			sec.Sessions = append(sec.Sessions, sessionFromRecord(s))
		}
		sections = append(sections, sec)
	}
	return sections, nil
}

// sessionFromRecord assumes the record already passed validation.
func sessionFromRecord(s SessionRecord) domain.Session {
	return domain.Session{
		Start:       domain.MustParseClock(s.Time),
		End:         domain.MustParseClock(s.EndTime),
		Title:       s.Title,
		Description: s.Description,
		Involvement: involvementFromRecord(s.InvolvedParticipants),
	}
}

func involvementFromRecord(p ParticipantRecord) domain.Involvement {
	kinds, _ := involvementKinds(p)
	if len(kinds) == 0 {
		return nil
	}
	switch kinds[0] {
	case domain.KindSpeaker:
		return domain.Speaker{Name: p.Speaker}
	case domain.KindPanel:
		return domain.Panel{Moderator: p.Moderator, Panelists: p.Panelists}
	case domain.KindPresentation:
		return domain.Presentation{Presenter: p.Presenter}
	default:
		return domain.Ceremony{Witness: p.Witness, Exchange: p.Exchange, Organizations: p.Organizations}
	}
}

// FileFromSections converts domain sections back to the file shape.
func FileFromSections(sections []domain.ScheduleSection) *ScheduleFile {
	file := &ScheduleFile{ConferenceSchedule: make([]SectionRecord, 0, len(sections))}
	for _, sec := range sections {
		rec := SectionRecord{
			Date:     sec.Date,
			Feature:  sec.Feature,
			Sessions: make([]SessionRecord, 0, len(sec.Sessions)),
		}
		for _, s := range sec.Sessions {
			rec.Sessions = append(rec.Sessions, SessionRecord{
				Time:                 s.Start.String(),
				EndTime:              s.End.String(),
				Title:                s.Title,
				Description:          s.Description,
				InvolvedParticipants: ParticipantFromInvolvement(s.Involvement),
			})
		}
		file.ConferenceSchedule = append(file.ConferenceSchedule, rec)
	}
	return file
}

// ParticipantFromInvolvement flattens an involvement into the loose bag.
func ParticipantFromInvolvement(inv domain.Involvement) ParticipantRecord {
	switch v := inv.(type) {
	case domain.Speaker:
		return ParticipantRecord{Speaker: v.Name}
	case domain.Panel:
		return ParticipantRecord{Moderator: v.Moderator, Panelists: v.Panelists}
	case domain.Presentation:
		return ParticipantRecord{Presenter: v.Presenter}
	case domain.Ceremony:
		return ParticipantRecord{Witness: v.Witness, Exchange: v.Exchange, Organizations: v.Organizations}
	default:
		return ParticipantRecord{}
	}
}
