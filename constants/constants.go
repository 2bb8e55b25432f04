package constants

const (
	DATA_INPUT_IS_NOT_NUMBER   = "Dữ liệu đầu vào không phải là số"
	ERROR_PARSE_DATA_TO_LOCALS = "Lỗi lấy dữ liệu từ context"
	ERROR_INTERNAL_ERROR       = "Lỗi hệ thống"
	ERROR_BACKEND              = "Không thể kết nối tới máy chủ"
	ERROR_EDIT                 = "Cập nhật thất bại"
	NOT_ADMIN                  = "Bạn không có quyền thực hiện thao tác này"
	SESSION_EXPIRED            = "Phiên đăng nhập đã hết hạn"
	NOT_FOUND                  = "Không tìm thấy dữ liệu"
)

const (
	ROLE_ADMIN   = "admin"
	ROLE_MANAGER = "manager"
)

const (
	STATUS_ROOM_AVAILABLE   = "available"
	STATUS_ROOM_MAINTENANCE = "maintenance"
	STATUS_ROOM_CANCEL      = "cancel"
)

// Định dạng thời gian backend dùng cho start_time
const BACKEND_TIME_LAYOUT = "02-01-2006 15:04"
const DATE_LAYOUT = "2006-01-02"
