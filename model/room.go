package model

import (
	"cinema_admin/seatplan"
)

type RoomType string

const (
	Small  RoomType = "Small"
	Medium RoomType = "Medium"
	Large  RoomType = "Large"
	IMAX   RoomType = "IMAX"
	FourDX RoomType = "4DX"
)

type RoomLimit struct {
	MinRows, MaxRows       int
	MinColumns, MaxColumns int
}

var RoomLimits = map[RoomType]RoomLimit{
	Small:  {MinRows: 5, MaxRows: 8, MinColumns: 10, MaxColumns: 14},
	Medium: {MinRows: 9, MaxRows: 12, MinColumns: 11, MaxColumns: 16},
	Large:  {MinRows: 13, MaxRows: 20, MinColumns: 12, MaxColumns: 20},
	IMAX:   {MinRows: 15, MaxRows: 25, MinColumns: 14, MaxColumns: 24},
	FourDX: {MinRows: 8, MaxRows: 15, MinColumns: 10, MaxColumns: 18},
}

// Room như backend trả về
type Room struct {
	ID         uint                   `json:"id"`
	Name       string                 `json:"name"`
	RoomNumber uint                   `json:"room_number"`
	CinemaId   uint                   `json:"cinema_id"`
	Type       RoomType               `json:"type"`
	Status     string                 `json:"status"`
	Capacity   int                    `json:"capacity"`
	FormatIds  []uint                 `json:"format_ids"`
	Seats      []seatplan.SeatPayload `json:"seats"`
}

type RoomFormMode string

const (
	RoomFormView RoomFormMode = "view"
	RoomFormEdit RoomFormMode = "edit"
	RoomFormAdd  RoomFormMode = "add"
)

// RoomForm là view-model của dialog phòng, mỗi chế độ một kiểu riêng
type RoomForm interface {
	Mode() RoomFormMode
}

type SeatGeometryInput struct {
	RowCount    int               `json:"rowCount" validate:"min=0,max=26"`
	ColumnCount int               `json:"columnCount" validate:"min=0,max=30"`
	VipZone     *seatplan.VipZone `json:"vipZone" validate:"omitempty"`
	AutoVip     bool              `json:"autoVip"`
}

func (g SeatGeometryInput) Plan() seatplan.Layout {
	return seatplan.Plan(g.RowCount, g.ColumnCount, g.VipZone, g.AutoVip)
}

type CreateRoomInput struct {
	CinemaId   uint              `json:"cinemaId" validate:"required"`
	RoomNumber uint              `json:"roomNumber" validate:"required,min=1"`
	Type       RoomType          `json:"type" validate:"required,oneof=Small Medium Large IMAX 4DX"`
	FormatIds  []uint            `json:"formatIds" validate:"omitempty,dive,required"`
	Seat       SeatGeometryInput `json:"seat"`
}

func (CreateRoomInput) Mode() RoomFormMode { return RoomFormAdd }

type EditRoomInput struct {
	RoomId     uint               `json:"roomId" validate:"required"`
	RoomNumber *uint              `json:"roomNumber" validate:"omitempty,min=1"`
	Type       *RoomType          `json:"type" validate:"omitempty,oneof=Small Medium Large IMAX 4DX"`
	Status     *string            `json:"status" validate:"omitempty,oneof=available maintenance cancel"`
	FormatIds  *[]uint            `json:"formatIds"`
	Seat       *SeatGeometryInput `json:"seat"`
}

func (EditRoomInput) Mode() RoomFormMode { return RoomFormEdit }

type RoomView struct {
	Room   Room            `json:"room"`
	Layout seatplan.Layout `json:"layout"`
}

func (RoomView) Mode() RoomFormMode { return RoomFormView }

// Edit chuyển thẳng từ chế độ xem sang chế độ sửa, giữ nguyên dữ liệu phòng
func (v RoomView) Edit() EditRoomInput {
	roomType := v.Room.Type
	status := v.Room.Status
	roomNumber := v.Room.RoomNumber
	formats := append([]uint{}, v.Room.FormatIds...)
	form := EditRoomInput{
		RoomId:     v.Room.ID,
		RoomNumber: &roomNumber,
		Type:       &roomType,
		Status:     &status,
		FormatIds:  &formats,
	}
	// ghế VIP chọn tay không tạo thành hình chữ nhật thì để trống seat,
	// gửi lại form sẽ giữ nguyên ghế cũ
	if v.Layout.ZoneMatchesSeats() {
		form.Seat = &SeatGeometryInput{
			RowCount:    v.Layout.RowCount,
			ColumnCount: v.Layout.ColumnCount,
			VipZone:     v.Layout.VipZone,
		}
	}
	return form
}
