package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aamagency-dev/sms-frontend/models"
	"github.com/aamagency-dev/sms-frontend/utils"
)

type SmsController struct {
	Base
}

func (s SmsController) Conversations(c *gin.Context) {
	sess, _ := utils.GetSession(c)

	conversations, err := s.Client.ListConversations(c.Request.Context(), sess.Token)
	if err != nil {
		s.fail(c, err, "conversations.html", gin.H{"Conversations": []models.Conversation{}})
		return
	}
	s.render(c, http.StatusOK, "conversations.html", gin.H{
		"Conversations": conversations,
		"Message":       c.Query("msg"),
	})
}

func (s SmsController) Conversation(c *gin.Context) {
	sess, _ := utils.GetSession(c)
	phone := c.Param("phone")

	messages, err := s.Client.GetConversation(c.Request.Context(), sess.Token, phone)
	if err != nil {
		s.fail(c, err, "conversation.html", gin.H{"Phone": phone, "Messages": []models.ConversationMessage{}})
		return
	}
	s.render(c, http.StatusOK, "conversation.html", gin.H{
		"Phone":    phone,
		"Messages": messages,
	})
}

// Reply sends a manual message into an existing conversation.
func (s SmsController) Reply(c *gin.Context) {
	sess, _ := utils.GetSession(c)
	phone := c.Param("phone")

	message := strings.TrimSpace(c.PostForm("message"))
	if message == "" {
		c.Redirect(http.StatusSeeOther, "/sms/conversations/"+phone)
		return
	}

	err := s.Client.SendManualSms(c.Request.Context(), sess.Token, models.ManualSmsInput{
		Phone:   phone,
		Message: message,
	})
	if err != nil {
		s.fail(c, err, "conversation.html", gin.H{"Phone": phone, "Messages": []models.ConversationMessage{}})
		return
	}
	c.Redirect(http.StatusSeeOther, "/sms/conversations/"+phone)
}

func (s SmsController) ComposeForm(c *gin.Context) {
	s.render(c, http.StatusOK, "sms_compose.html", gin.H{"Phone": "", "CustomerIDs": "", "Body": ""})
}

// Send handles the compose form: a single send, or a bulk send when a list
// of customer IDs was supplied.
func (s SmsController) Send(c *gin.Context) {
	sess, _ := utils.GetSession(c)

	message := strings.TrimSpace(c.PostForm("message"))
	phone := strings.TrimSpace(c.PostForm("phone"))
	rawIDs := strings.TrimSpace(c.PostForm("customer_ids"))

	errs := map[string]string{}
	if message == "" {
		errs["message"] = "Message is required"
	}
	if phone == "" && rawIDs == "" {
		errs["phone"] = "Enter a phone number or a list of customer IDs"
	}
	if phone != "" && !utils.ValidatePhone(phone) {
		errs["phone"] = "Enter a valid phone number"
	}
	if len(errs) > 0 {
		s.render(c, http.StatusBadRequest, "sms_compose.html", gin.H{
			"Errors": errs, "Phone": phone, "CustomerIDs": rawIDs, "Body": message,
		})
		return
	}

	var err error
	if rawIDs != "" {
		ids := []string{}
		for _, id := range strings.Split(rawIDs, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
		err = s.Client.SendBulkSms(c.Request.Context(), sess.Token, models.SendBulkSmsInput{
			CustomerIDs: ids,
			Message:     message,
		})
	} else {
		err = s.Client.SendSms(c.Request.Context(), sess.Token, models.SendSmsInput{
			Phone:   phone,
			Message: message,
		})
	}
	if err != nil {
		if s.expireSession(c, err) {
			return
		}
		s.render(c, http.StatusOK, "sms_compose.html", gin.H{
			"Banner": errorMessage(err), "Phone": phone, "CustomerIDs": rawIDs, "Body": message,
		})
		return
	}
	c.Redirect(http.StatusSeeOther, "/sms/conversations?msg=Message+sent")
}
