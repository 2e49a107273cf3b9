package mapper

import (
	"catalog-assistant-be/internal/dto"
	"catalog-assistant-be/pkg/dialog"
)

func ToMessageDTO(msg *dialog.Message) *dto.MessageDTO {
	if msg == nil {
		return nil
	}

	out := &dto.MessageDTO{
		From:       string(msg.From),
		Text:       msg.Text,
		Attachment: msg.Attachment,
		CreatedAt:  msg.CreatedAt,
	}
	for _, o := range msg.Options {
		out.Options = append(out.Options, dto.OptionDTO{Label: o.Label, Value: o.Value})
	}
	for _, it := range msg.Items {
		out.Items = append(out.Items, dto.ItemRefDTO{Id: it.ID, Name: it.Name, Description: it.Description})
	}
	return out
}

func ToMessageDTOs(msgs []dialog.Message) []*dto.MessageDTO {
	out := make([]*dto.MessageDTO, 0, len(msgs))
	for i := range msgs {
		out = append(out, ToMessageDTO(&msgs[i]))
	}
	return out
}
