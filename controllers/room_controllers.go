package controllers

import (
	"context"
	"log"
	"strconv"
	"time"

	"hoteldesk/dto"
	"hoteldesk/models"
	"hoteldesk/response"
	"hoteldesk/services"
	"hoteldesk/validator"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const roomsCacheKey = "rooms:all"

type RoomController struct {
	Rooms      *services.RoomService
	Redis      *redis.Client
	Cloudinary *cloudinary.Cloudinary
}

func NewRoomController(rooms *services.RoomService, redisCli *redis.Client, cld *cloudinary.Cloudinary) RoomController {
	return RoomController{
		Rooms:      rooms,
		Redis:      redisCli,
		Cloudinary: cld,
	}
}

func (rc RoomController) invalidateRoomCaches(ctx context.Context) {
	if err := services.DeleteKeysByPattern(ctx, rc.Redis, "rooms:*"); err != nil {
		log.Printf("Error invalidating room caches: %v", err)
	}
}

// GetRooms lists the catalog from cache, falling back to the DB
func (rc RoomController) GetRooms(c *gin.Context) {
	ctx := context.Background()

	var rooms []models.Room
	if err := services.GetFromRedis(ctx, rc.Redis, roomsCacheKey, &rooms); err != nil || len(rooms) == 0 {
		var dbErr error
		rooms, dbErr = rc.Rooms.All()
		if dbErr != nil {
			response.ServerError(c)
			return
		}
		if err := services.SetToRedis(ctx, rc.Redis, roomsCacheKey, rooms, 10*time.Minute); err != nil {
			log.Printf("Error caching rooms: %v", err)
		}
	}

	response.SuccessWithTotal(c, rooms, len(rooms))
}

// GetRoomsGrouped returns the catalog keyed by room type
func (rc RoomController) GetRoomsGrouped(c *gin.Context) {
	grouped, err := rc.Rooms.GroupedByType()
	if err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, grouped)
}

// GetAvailableRooms answers the availability query for a stay range
func (rc RoomController) GetAvailableRooms(c *gin.Context) {
	var req dto.AvailableRoomsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	rooms, err := rc.Rooms.AvailableRooms(req.CheckInDate, req.CheckOutDate, req.RoomType)
	if err != nil {
		response.BadRequest(c, "Dates must be YYYY-MM-DD")
		return
	}

	response.SuccessWithTotal(c, rooms, len(rooms))
}

// CreateRoom adds a room to the catalog
func (rc RoomController) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidateRoomRequest(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	room := models.Room{
		RoomNumber:   req.RoomNumber,
		Type:         req.Type,
		Rate:         req.Rate,
		Floor:        req.Floor,
		Amenities:    pq.StringArray(req.Amenities),
		MaxOccupancy: req.MaxOccupancy,
	}
	if err := rc.Rooms.Create(&room); err != nil {
		response.Conflict(c)
		return
	}

	rc.invalidateRoomCaches(context.Background())

	response.Success(c, room)
}

// UpdateRoom changes catalog fields on an existing room
func (rc RoomController) UpdateRoom(c *gin.Context) {
	roomNumber := c.Param("roomNumber")

	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	room, err := rc.Rooms.ByNumber(roomNumber)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if req.Rate != nil {
		room.Rate = *req.Rate
	}
	if req.Floor != nil {
		room.Floor = *req.Floor
	}
	if req.Amenities != nil {
		room.Amenities = pq.StringArray(req.Amenities)
	}
	if req.MaxOccupancy != nil {
		room.MaxOccupancy = *req.MaxOccupancy
	}

	if err := rc.Rooms.Update(room); err != nil {
		response.ServerError(c)
		return
	}

	rc.invalidateRoomCaches(context.Background())

	response.Success(c, room)
}

// ChangeRoomStatus applies a staff status override
func (rc RoomController) ChangeRoomStatus(c *gin.Context) {
	roomNumber := c.Param("roomNumber")

	var req dto.UpdateRoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	room, err := rc.Rooms.SetStatus(roomNumber, req.Status)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c)
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	rc.invalidateRoomCaches(context.Background())

	response.Success(c, room)
}

// DeleteRoom removes a room from the catalog
func (rc RoomController) DeleteRoom(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid room id")
		return
	}

	if err := rc.Rooms.Delete(uint(id)); err != nil {
		response.ServerError(c)
		return
	}

	rc.invalidateRoomCaches(context.Background())

	response.Success(c, nil)
}

// GetOccupancy returns the live occupancy stats
func (rc RoomController) GetOccupancy(c *gin.Context) {
	stats, err := rc.Rooms.Occupancy()
	if err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, stats)
}

// UploadRoomImage stores a room photo and returns its URL
func (rc RoomController) UploadRoomImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "No file")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.BadRequest(c, "Cannot open file")
		return
	}
	defer src.Close()

	ctx := context.Background()
	resp, err := rc.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "rooms"})
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"url": resp.SecureURL})
}
