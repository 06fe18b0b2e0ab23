package waste

import (
	"log"

	"github.com/cleanninja/clean_ninja_api/internal/model"
)

func strPtr(s string) *string { return &s }

// Seed loads a handful of starter reports for dev mode so the map view has
// something to show. Everything goes through the public API, so counters and
// lifecycle state stay consistent.
func Seed(s *Service) {
	budi := model.UserSnapshot{ID: "user-123456", DisplayName: "Budi Santoso"}
	ahmad := model.UserSnapshot{ID: "user-789012", DisplayName: "Ahmad Rizki"}
	dewi := model.UserSnapshot{ID: "user-345678", DisplayName: "Dewi Lestari"}

	plastic, err := s.CreateReport(model.ReportDraft{
		Title:       "Tumpukan sampah plastik di pinggir sungai",
		Description: "Tumpukan sampah plastik yang cukup besar di tepi Sungai Ciliwung. Berpotensi mencemari aliran sungai, terutama saat hujan.",
		WasteType:   model.WastePlastic,
		Severity:    model.SeverityHigh,
		Location: &model.Location{
			Latitude:  -6.2088,
			Longitude: 106.8456,
			Address:   "Jl. Jenderal Sudirman, Jakarta Pusat, DKI Jakarta",
		},
		Images: []string{"https://placehold.co/waste-1.jpg"},
	}, budi)
	if err != nil {
		log.Println("seed: failed to create plastic report:", err)
		return
	}

	industrial, err := s.CreateReport(model.ReportDraft{
		Title:       "Limbah industri mencemari saluran air",
		Description: "Cairan berwarna gelap yang diduga limbah industri mengalir ke saluran air di dekat pabrik tekstil. Bau menyengat dan busa di permukaan air.",
		WasteType:   model.WasteIndustrial,
		Severity:    model.SeverityCritical,
		Location: &model.Location{
			Latitude:  -6.1751,
			Longitude: 106.8650,
			Address:   "Jl. Industri Raya, Pulo Gadung, Jakarta Timur, DKI Jakarta",
		},
		Images: []string{"https://placehold.co/waste-2.jpg"},
	}, ahmad)
	if err != nil {
		log.Println("seed: failed to create industrial report:", err)
		return
	}

	electronic, err := s.CreateReport(model.ReportDraft{
		Title:       "Tumpukan barang elektronik bekas",
		Description: "TV rusak, komputer lama dan perangkat rumah tangga dibuang di lapangan kosong. Berpotensi mencemari tanah dengan bahan kimia berbahaya.",
		WasteType:   model.WasteElectronic,
		Severity:    model.SeverityMedium,
		Location: &model.Location{
			Latitude:  -6.2023,
			Longitude: 106.8188,
			Address:   "Jl. Tanah Abang III, Tanah Abang, Jakarta Pusat, DKI Jakarta",
		},
		Images: []string{"https://placehold.co/waste-3.jpg"},
	}, budi)
	if err != nil {
		log.Println("seed: failed to create electronic report:", err)
		return
	}

	if _, err := s.TransitionStatus(industrial.ID, model.StatusInProgress, nil, budi); err != nil {
		log.Println("seed: failed to start industrial cleanup:", err)
	}
	if _, err := s.TransitionStatus(electronic.ID, model.StatusInProgress, nil, dewi); err != nil {
		log.Println("seed: failed to start electronic cleanup:", err)
	}
	if _, err := s.TransitionStatus(electronic.ID, model.StatusCleaned, strPtr("https://placehold.co/clean-1.jpg"), dewi); err != nil {
		log.Println("seed: failed to finish electronic cleanup:", err)
	}

	if _, err := s.AddComment(plastic.ID, "Saya akan coba bersihkan akhir pekan ini.", dewi); err != nil {
		log.Println("seed: failed to add comment:", err)
	}
	if _, err := s.AddComment(plastic.ID, "Saya sudah hubungi dinas kebersihan untuk membantu.", budi); err != nil {
		log.Println("seed: failed to add comment:", err)
	}
}
