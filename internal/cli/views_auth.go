package cli

import (
	"context"

	"github.com/go-playground/validator"

	"github.com/proval-lk/valuer-client/internal/models"
)

// loginView представление входа.
func (a *App) loginView(ctx context.Context) error {
	email, err := promptText(a.reader, a.out, "Email")
	if err != nil {
		return err
	}
	pass, err := promptPassword(a.termFd, a.out, "Password")
	if err != nil {
		return err
	}

	result, err := a.session.Login(ctx, email, pass)
	if err != nil {
		a.printf("Login failed: %s\n", err)
		return err
	}
	a.printf("Logged in as %s\n", result.User.FullName)
	if result.RequiresVerification {
		a.println("Your email is not verified yet. Use 'verify' with the token from the email, or 'resend' to get a new one.")
	}
	return nil
}

// registerView представление регистрации: собирает полную анкету,
// валидирует её на клиенте и отправляет.
func (a *App) registerView(ctx context.Context) error {
	var req models.RegisterRequest
	var err error

	if req.Email, err = promptText(a.reader, a.out, "Email"); err != nil {
		return err
	}
	if req.Password, err = promptPassword(a.termFd, a.out, "Password (min 8 chars)"); err != nil {
		return err
	}
	if req.FullName, err = promptText(a.reader, a.out, "Full name"); err != nil {
		return err
	}
	if req.Honorable, err = promptText(a.reader, a.out, "Title (Mr/Mrs/Dr, optional)"); err != nil {
		return err
	}
	if req.ProfessionalTitle, err = promptText(a.reader, a.out, "Professional title (optional)"); err != nil {
		return err
	}
	if req.IVSLRegistration, err = promptText(a.reader, a.out, "IVSL registration no (optional)"); err != nil {
		return err
	}
	if req.IVSLMembership, err = promptText(a.reader, a.out, "IVSL membership level (optional)"); err != nil {
		return err
	}
	if req.ProfessionalStatus, err = promptText(a.reader, a.out, "Professional status (optional)"); err != nil {
		return err
	}
	if req.ContactNumber, err = promptText(a.reader, a.out, "Contact number (optional)"); err != nil {
		return err
	}
	if req.MobileNumber, err = promptText(a.reader, a.out, "Mobile number (optional)"); err != nil {
		return err
	}
	if req.AddressCity, err = promptText(a.reader, a.out, "City (optional)"); err != nil {
		return err
	}
	if req.AddressDistrict, err = promptText(a.reader, a.out, "District (optional)"); err != nil {
		return err
	}

	// квалификации: пустая строка завершает ввод
	for {
		q, err := promptText(a.reader, a.out, "Qualification (empty to finish)")
		if err != nil {
			return err
		}
		if q == "" {
			break
		}
		req.Qualifications = append(req.Qualifications, q)
	}

	if err := a.validate.Struct(req); err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			a.printf("  %s: invalid value\n", fieldErr.Field())
		}
		return err
	}

	result, err := a.session.Register(ctx, req)
	if err != nil {
		a.printf("Registration failed: %s\n", err)
		return err
	}
	a.printf("Registered as %s\n", result.User.FullName)
	if result.RequiresVerification {
		a.println("Check the devstub log for the verification token, then run 'verify'.")
	}
	return nil
}

// verifyEmailView подтверждает почту по токену из письма.
func (a *App) verifyEmailView(ctx context.Context) error {
	token, err := promptText(a.reader, a.out, "Verification token")
	if err != nil {
		return err
	}
	if token == "" {
		a.println("No verification token provided")
		return nil
	}

	message, err := a.session.VerifyEmail(ctx, token)
	if err != nil {
		a.printf("Verification failed: %s\n", err)
		return err
	}
	a.println(message)
	return nil
}

// resendVerificationView запрашивает повторное письмо подтверждения.
func (a *App) resendVerificationView(ctx context.Context) error {
	if !a.allowed() {
		return nil
	}
	message, err := a.session.ResendVerification(ctx)
	if err != nil {
		a.printf("Resend failed: %s\n", err)
		return err
	}
	a.println(message)
	return nil
}

// logoutView завершает сессию.
func (a *App) logoutView() error {
	a.session.Logout()
	a.println("Logged out.")
	return nil
}
