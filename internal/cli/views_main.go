package cli

import (
	"context"
	"fmt"

	"github.com/go-playground/validator"

	"github.com/proval-lk/valuer-client/internal/models"
)

// dashboardView показывает сводку кабинета.
func (a *App) dashboardView(ctx context.Context) error {
	if !a.allowed() {
		return nil
	}

	var dashboard models.Dashboard
	if err := a.api.Get(ctx, "/users/dashboard", &dashboard); err != nil {
		return err
	}

	st := dashboard.Statistics
	a.println("Dashboard")
	a.printf("  Reports:   %d total (%d completed, %d drafts)\n",
		st.Reports.Total, st.Reports.Completed, st.Reports.Draft)
	a.printf("  Documents: %d total (%d processed, %d pending)\n",
		st.Documents.Total, st.Documents.Processed, st.Documents.Pending)

	if len(dashboard.RecentReports) == 0 {
		a.println("  No reports yet. Get started by creating your first valuation report.")
		return nil
	}
	a.println("  Recent reports:")
	for _, rep := range dashboard.RecentReports {
		ref := rep.ReferenceNumber
		if ref == "" {
			ref = "Report #" + rep.ID
		}
		a.printf("    %-16s %-12s %s - %s\n", ref, rep.Status, rep.PropertyType, rep.PropertyAddress)
	}
	return nil
}

// profileView показывает текущий профиль.
func (a *App) profileView(_ context.Context) error {
	if !a.allowed() {
		return nil
	}

	u := a.session.User()
	if u == nil {
		return nil
	}

	a.println("Profile")
	a.printf("  Name:            %s %s\n", u.Honorable, u.FullName)
	a.printf("  Email:           %s (verified: %v)\n", u.Email, u.IsVerified)
	a.printf("  Title:           %s\n", orNotSpecified(u.ProfessionalTitle))
	a.printf("  IVSL reg:        %s\n", orNotSpecified(u.IVSLRegistration))
	a.printf("  IVSL membership: %s\n", orNotSpecified(u.IVSLMembership))
	a.printf("  Status:          %s\n", orNotSpecified(u.ProfessionalStatus))
	a.printf("  Contact:         %s / %s\n", orNotSpecified(u.ContactNumber), orNotSpecified(u.MobileNumber))
	a.printf("  Address:         %s\n", orNotSpecified(joinAddress(u)))
	if len(u.Qualifications) > 0 {
		a.println("  Qualifications:")
		for i, q := range u.Qualifications {
			a.printf("    [%d] %s\n", i, q)
		}
	} else {
		a.println("  Qualifications:  none")
	}
	a.printf("  Profile completeness: %d%%\n", u.ProfileCompleteness)
	return nil
}

// editProfileView редактирует профиль. Пустой ввод оставляет текущее
// значение; после успешного сохранения локальный профиль заменяется
// представлением сервера целиком.
func (a *App) editProfileView(ctx context.Context) error {
	if !a.allowed() {
		return nil
	}

	u := a.session.User()
	if u == nil {
		return nil
	}

	req := models.ProfileUpdateRequest{}
	var err error
	if req.FullName, err = promptDefault(a.reader, a.out, "Full name", u.FullName); err != nil {
		return err
	}
	if req.Honorable, err = promptDefault(a.reader, a.out, "Title", u.Honorable); err != nil {
		return err
	}
	if req.ProfessionalTitle, err = promptDefault(a.reader, a.out, "Professional title", u.ProfessionalTitle); err != nil {
		return err
	}
	if req.IVSLRegistration, err = promptDefault(a.reader, a.out, "IVSL registration no", u.IVSLRegistration); err != nil {
		return err
	}
	if req.IVSLMembership, err = promptDefault(a.reader, a.out, "IVSL membership level", u.IVSLMembership); err != nil {
		return err
	}
	if req.ProfessionalStatus, err = promptDefault(a.reader, a.out, "Professional status", u.ProfessionalStatus); err != nil {
		return err
	}
	if req.ContactNumber, err = promptDefault(a.reader, a.out, "Contact number", u.ContactNumber); err != nil {
		return err
	}
	if req.MobileNumber, err = promptDefault(a.reader, a.out, "Mobile number", u.MobileNumber); err != nil {
		return err
	}
	if req.AlternativeContact, err = promptDefault(a.reader, a.out, "Alternative contact", u.AlternativeContact); err != nil {
		return err
	}
	if req.AddressHouse, err = promptDefault(a.reader, a.out, "House", u.AddressHouse); err != nil {
		return err
	}
	if req.AddressStreet, err = promptDefault(a.reader, a.out, "Street", u.AddressStreet); err != nil {
		return err
	}
	if req.AddressArea, err = promptDefault(a.reader, a.out, "Area", u.AddressArea); err != nil {
		return err
	}
	if req.AddressCity, err = promptDefault(a.reader, a.out, "City", u.AddressCity); err != nil {
		return err
	}
	if req.AddressDistrict, err = promptDefault(a.reader, a.out, "District", u.AddressDistrict); err != nil {
		return err
	}

	if err := a.validate.Struct(req); err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			a.printf("  %s: invalid value\n", fieldErr.Field())
		}
		return err
	}

	updated, err := a.session.UpdateProfile(ctx, req)
	if err != nil {
		a.printf("Update failed: %s\n", err)
		return err
	}
	a.printf("Profile updated. Completeness: %d%%\n", updated.ProfileCompleteness)
	return nil
}

// qualificationsView управляет списком квалификаций.
func (a *App) qualificationsView(ctx context.Context) error {
	if !a.allowed() {
		return nil
	}

	action, err := promptText(a.reader, a.out, "Action (add/remove)")
	if err != nil {
		return err
	}

	var resp models.QualificationsResponse
	switch action {
	case "add":
		q, err := promptText(a.reader, a.out, "Qualification")
		if err != nil {
			return err
		}
		if err := a.api.Post(ctx, "/users/qualifications", models.QualificationRequest{Qualification: q}, &resp); err != nil {
			return err
		}
	case "remove":
		index, err := promptInt(a.reader, a.out, "Index", -1)
		if err != nil {
			return err
		}
		if err := a.api.Delete(ctx, fmt.Sprintf("/users/qualifications/%d", index), &resp); err != nil {
			return err
		}
	default:
		a.println("Unknown action:", action)
		return nil
	}

	a.println("Qualifications:")
	for i, q := range resp.Qualifications {
		a.printf("  [%d] %s\n", i, q)
	}
	return nil
}

// reportsView страница отчётов — заглушка, как и в оригинале.
func (a *App) reportsView() error {
	if !a.allowed() {
		return nil
	}
	a.println("Valuation Reports")
	a.println("  Report management is coming soon.")
	return nil
}

// documentsView страница документов — заглушка, как и в оригинале.
func (a *App) documentsView() error {
	if !a.allowed() {
		return nil
	}
	a.println("Documents")
	a.println("  Document processing is coming soon.")
	return nil
}

// refreshView перечитывает профиль с сервера.
func (a *App) refreshView(ctx context.Context) error {
	if !a.allowed() {
		return nil
	}
	u, err := a.session.RefreshUserData(ctx)
	if err != nil {
		return err
	}
	a.printf("Profile refreshed for %s\n", u.FullName)
	return nil
}

func orNotSpecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}

func joinAddress(u *models.User) string {
	parts := []string{}
	for _, p := range []string{u.AddressHouse, u.AddressStreet, u.AddressArea, u.AddressCity, u.AddressDistrict} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out += ", " + p
	}
	return out
}
