package email

import "fmt"

const signature = "Regards,\nUnified Academic Platform (UAP)\n"

// StudentCredentialsMessage renders the one-time student credentials email.
// The plaintext password appears here and nowhere else.
func StudentCredentialsMessage(to, name, registrationNumber, rollNumber, plainPassword string) Message {
	body := fmt.Sprintf(`Dear %s,

Your Unified Academic Platform (UAP) student account has been created.

Registration Number : %s
Roll Number         : %s
Email               : %s
Password            : %s

You can now log in to the UAP Student Dashboard using these credentials.
Please change your password after your first login.

%s`, name, registrationNumber, rollNumber, to, plainPassword, signature)

	return Message{
		To:      to,
		Subject: "Your Unified Academic Platform (UAP) Student Credentials",
		Body:    body,
	}
}

// TeacherCredentialsMessage renders the one-time teacher credentials email.
func TeacherCredentialsMessage(to, name, registrationNumber, department, plainPassword string) Message {
	body := fmt.Sprintf(`Dear %s,

Your Unified Academic Platform (UAP) teacher account has been created.

Registration Number : %s
Department          : %s
Email               : %s
Password            : %s

You can now log in to the UAP Teacher Dashboard using these credentials.
Please change your password after your first login.

%s`, name, registrationNumber, department, to, plainPassword, signature)

	return Message{
		To:      to,
		Subject: "Your Unified Academic Platform (UAP) Teacher Credentials",
		Body:    body,
	}
}

// StaffCredentialsMessage renders the one-time staff credentials email.
func StaffCredentialsMessage(to, name, employeeNumber, role, plainPassword string) Message {
	body := fmt.Sprintf(`Dear %s,

Your Unified Academic Platform (UAP) staff account has been created.

Employee Number : %s
Role            : %s
Email           : %s
Password        : %s

Please change your password after your first login.

%s`, name, employeeNumber, role, to, plainPassword, signature)

	return Message{
		To:      to,
		Subject: "Your Unified Academic Platform (UAP) Staff Credentials",
		Body:    body,
	}
}

// EmployeeCredentialsMessage renders the one-time DICT employee credentials email.
func EmployeeCredentialsMessage(to, name, employeeID, plainPassword string) Message {
	body := fmt.Sprintf(`Dear %s,

Your Unified Academic Platform (UAP) DICT employee account has been created.

Employee ID : %s
Email       : %s
Password    : %s

Please log in and change your password after your first login.

%s`, name, employeeID, to, plainPassword, signature)

	return Message{
		To:      to,
		Subject: "Your UAP DICT Employee Credentials",
		Body:    body,
	}
}

// ResetPasswordMessage renders the password reset link email.
func ResetPasswordMessage(to, name, resetURL string) Message {
	body := fmt.Sprintf(`Dear %s,

We received a request to reset your Unified Academic Platform (UAP) DICT account password.

You can set a new password by opening the link below (this link will expire in 1 hour):

%s

If you did not request this, you can safely ignore this email.

%s`, name, resetURL, signature)

	return Message{
		To:      to,
		Subject: "UAP DICT Password Reset Request",
		Body:    body,
	}
}
