package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"

	"github.com/vietcare-dev/hospital-shift-manager/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var commonSurnames = []string{
	"Nguyễn", "Trần", "Lê", "Phạm", "Hoàng", "Huỳnh", "Phan", "Vũ", "Võ", "Đặng",
	"Bùi", "Đỗ", "Hồ", "Ngô", "Dương", "Lý",
}
var commonMiddleNames = []string{
	"Văn", "Thị", "Hữu", "Đức", "Minh", "Ngọc", "Thanh", "Quang", "Xuân", "Thùy",
}
var commonGivenNames = []string{
	"An", "Bình", "Cường", "Dũng", "Giang", "Hà", "Hải", "Hạnh", "Hùng", "Hương",
	"Lan", "Linh", "Long", "Mai", "Nam", "Nga", "Phong", "Phúc", "Quân", "Thảo",
	"Trang", "Tuấn", "Tú", "Vy",
}

func GenerateRandomVietnameseName() string {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	middle := commonMiddleNames[rand.Intn(len(commonMiddleNames))]
	given := commonGivenNames[rand.Intn(len(commonGivenNames))]
	return surname + " " + middle + " " + given
}

// chỉ sinh bác sĩ và điều dưỡng, tài khoản quản trị được tạo riêng
var roles = []domain.Role{
	domain.RoleDoctor,
	domain.RoleNurse,
}

func GenerateRandomRole() domain.Role {
	return roles[rand.Intn(len(roles))]
}

var digits = "0123456789"

// bỏ dấu tổ hợp sau khi tách NFD
var diacriticsRemover = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldDiacritics chuyển một chuỗi tiếng Việt về ASCII không dấu.
// Chữ đ không phải dấu tổ hợp nên phải thay riêng.
func FoldDiacritics(s string) string {
	folded, _, err := transform.String(diacriticsRemover, s)
	if err != nil {
		folded = s
	}
	folded = strings.ReplaceAll(folded, "đ", "d")
	folded = strings.ReplaceAll(folded, "Đ", "D")
	return folded
}

func GenerateUsernameFromFullName(fullName string) string {
	parts := strings.Fields(strings.ToLower(FoldDiacritics(fullName)))
	username := strings.Join(parts, "")

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

func GenerateRandomUser(password string, emailDomainName string, hospitalID int64) (*domain.User, error) {
	fullName := GenerateRandomVietnameseName()
	username := GenerateUsernameFromFullName(fullName)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		FullName:     fullName,
		Email:        username + "@" + emailDomainName,
		Role:         GenerateRandomRole(),
		HospitalID:   hospitalID,
	}

	return user, nil
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	randomPassword := make([]rune, length)
	for i := range randomPassword {
		randomPassword[i] = letters[rand.Intn(len(letters))]
	}
	return string(randomPassword)
}

var hospitalNames = []string{
	"Đa khoa Trung ương", "Đa khoa Thành phố", "Nhi đồng", "Chợ Rẫy", "Bạch Mai",
	"Việt Đức", "Thống Nhất", "Hữu nghị", "Tâm Anh", "Hoàn Mỹ",
}

func GenerateRandomHospital() *domain.Hospital {
	return &domain.Hospital{
		Name:    "Bệnh viện " + hospitalNames[rand.Intn(len(hospitalNames))],
		Address: fmt.Sprintf("Số %d đường Lê Lợi", rand.Intn(200)+1),
	}
}

// GenerateRandomWorkingHours sinh bảng giờ làm việc đủ 7 thứ cho một bệnh viện:
// chủ nhật nghỉ, các ngày còn lại mở cửa 07:00–09:00 và đóng cửa 16:00–18:00
// để khung giờ luôn vắt qua buổi trưa.
func GenerateRandomWorkingHours(hospitalID int64) []domain.WeekDayAvailability {
	table := make([]domain.WeekDayAvailability, 0, 7)

	for day := 0; day <= 6; day++ {
		entry := domain.WeekDayAvailability{
			HospitalID:    hospitalID,
			DayOfWeek:     day,
			DayOfWeekName: domain.DayOfWeekName(day),
			StartTime:     "00:00:00",
			EndTime:       "00:00:00",
			IsClosed:      true,
		}

		if day != 0 {
			entry.IsClosed = false
			entry.StartTime = fmt.Sprintf("%02d:%02d:00", rand.Intn(3)+7, rand.Intn(2)*30)
			entry.EndTime = fmt.Sprintf("%02d:%02d:00", rand.Intn(3)+16, rand.Intn(2)*30)
		}

		table = append(table, entry)
	}

	return table
}

var departmentNames = []string{
	"Khoa Nội", "Khoa Ngoại", "Khoa Nhi", "Khoa Sản", "Khoa Tim mạch", "Khoa Da liễu",
}

func GenerateRandomRoom() *domain.Room {
	return &domain.Room{
		Name:           fmt.Sprintf("Phòng %d", rand.Intn(500)+100),
		DepartmentName: departmentNames[rand.Intn(len(departmentNames))],
	}
}
