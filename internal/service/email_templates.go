package service

import "fmt"

func passwordResetEmailTemplate(name, resetURL, appName string) (string, string) {
	subject := fmt.Sprintf("Reset your %s password", appName)
	body := fmt.Sprintf(`Hi %s,

You asked to reset your password. Choose a new one here:
%s

This link expires in 1 hour and can only be used once.

If you didn't request this, you can safely ignore this email. Your password won't be changed.

Best,
The %s Team`, name, resetURL, appName)

	return subject, body
}

func welcomeEmailTemplate(name, appURL, appName string) (string, string) {
	subject := fmt.Sprintf("Welcome to %s!", appName)
	body := fmt.Sprintf(`Hi %s,

Your account is ready. Set your first savings goal and Piggy will keep an eye on it.

Get started: %s

Best,
The %s Team`, name, appURL, appName)

	return subject, body
}

func savingReminderEmailTemplate(name, goalName, amount, due, appName string) (string, string) {
	subject := fmt.Sprintf("Time to feed Piggy: %s", goalName)
	body := fmt.Sprintf(`Hi %s,

Your next saving of %s for "%s" is due %s.

Check in from the app once you've put it aside so Piggy stays calm.

Best,
The %s Team`, name, amount, goalName, due, appName)

	return subject, body
}
