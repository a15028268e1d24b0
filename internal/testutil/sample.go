package testutil

import "github.com/alexanderramin/confplan/internal/domain"

// Sample conference data (17 October 2024), the two tracks used across tests.
const (
	ConferenceDate = "17 October 2024 (Thursday)"
	FeatureFuture  = "The Future"
	FeatureStartup = "Startup Village"
)

// FutureTrack returns the "The Future" track.
func FutureTrack() domain.ScheduleSection {
	return NewTestSection(FeatureFuture, ConferenceDate,
		NewTestSession("Keynote", "09:00", "09:45",
			WithDescription("Transforming the Digital Economy: The Role of AI and Big Data"),
			WithSpeaker("The Honourable Dato Sri Haji Julaihi Bin Haji Narawi")),
		NewTestSession("Panel Discussion", "09:50", "10:30",
			WithDescription("The Impact of AI Across Industries"),
			WithPanel("Tim Miller", "Richard Goh", "Ibrahim Sani", "AR Mohd", "Dato Haji Syeed Mohd Hussien bin Wan Abd Rahman")),
		NewTestSession("The Economic and Social Power of Digital Inclusion", "10:30", "11:00",
			WithSpeaker("John Low Jaei Hong")),
		NewTestSession("Harnessing Big Data and AI: Fundamentals of Implementation", "11:00", "11:30",
			WithSpeaker("Mohamustaqeem Mohammed")),
		NewTestSession("Sustainable Development Through Green Infrastructure", "11:30", "12:00",
			WithSpeaker("The Honourable Datuk Haji Ismawi bin Haji Ismuni")),
		NewTestSession("Leaders Forum", "14:00", "16:00",
			WithDescription("Investment Outlook - What, Where & Why"),
			WithPanel("YBhg. Dato' Ir. Ts. Sudarotno Bin Osman", "Mr Timothy Ong", "Prof. Jugdutt (Jack) Singh", "Datu Lester Matthew")),
	)
}

// StartupTrack returns the "Startup Village" track.
func StartupTrack() domain.ScheduleSection {
	return NewTestSection(FeatureStartup, ConferenceDate,
		NewTestSession("Fireside Chat", "09:00", "10:00",
			WithDescription("Bots & Brushes: How AI is Shaking Up Malaysia's Animation & Gaming Scene!"),
			WithPanel("Amirin Arsya", "Andrew Bong", "Irwan Junaidy", "Ryan Lee Chun Hoe")),
		NewTestSession("Demo Day: Founder's Forge", "10:00", "11:00",
			WithInvolvement(domain.Presentation{Presenter: "FutureLab"})),
		NewTestSession("Demo Day: Capture the Flag - Cybersecurity Hackathon Demo", "11:00", "11:40",
			WithPanel("Nur Hartini Mardan", "Dr Sivaraman Eswaran")),
		NewTestSession("Panel Discussion", "11:40", "12:30",
			WithDescription("Show Me the Money: Different Funds for Different Runs"),
			WithPanel("Vivanita Sarjuni", "Stanley Siva", "Juliana Jan", "Xelia Tong")),
		NewTestSession("Prize Giving Ceremony (Founder's Forge and Capture the Flag) & MOU Exchange", "12:30", "13:00",
			WithInvolvement(domain.Ceremony{
				Witness:  "YB Dato Sri Roland Sagah",
				Exchange: "Sudarton Osman",
				Organizations: []string{
					"Vayapath Hanshen",
					"Venture Interactive",
					"Sarawak Influencers Council",
					"Leave a Nest",
					"Dynamik Technologies",
					"Dropee",
				},
			})),
	)
}

// SampleSchedule returns both tracks in catalog order.
func SampleSchedule() []domain.ScheduleSection {
	return []domain.ScheduleSection{FutureTrack(), StartupTrack()}
}
