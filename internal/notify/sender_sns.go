package notify

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
)

// SNSPusher delivers through AWS SNS platform endpoints.
type SNSPusher struct {
	sns            *awssns.Client
	fcmPlatformArn string
}

func NewSNSPusher(ctx context.Context) (*SNSPusher, error) {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "ap-south-1"
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}

	arn := os.Getenv("SNS_FCM_ARN")
	if arn == "" {
		return nil, errors.New("SNS_FCM_ARN not set")
	}

	return &SNSPusher{
		sns:            awssns.NewFromConfig(cfg),
		fcmPlatformArn: arn,
	}, nil
}

func (p *SNSPusher) Register(ctx context.Context, platform, token string) (string, error) {
	switch strings.ToLower(platform) {
	case "android", "ios", "web":
	default:
		return "", errors.New("unknown platform")
	}

	out, err := p.sns.CreatePlatformEndpoint(ctx, &awssns.CreatePlatformEndpointInput{
		PlatformApplicationArn: aws.String(p.fcmPlatformArn),
		Token:                  aws.String(token),
	})
	if err != nil {
		return "", err
	}
	return aws.ToString(out.EndpointArn), nil
}

func (p *SNSPusher) Send(ctx context.Context, endpoint string, msg Message) error {
	payload, err := snsPayload(msg)
	if err != nil {
		return err
	}

	_, err = p.sns.Publish(ctx, &awssns.PublishInput{
		MessageStructure: aws.String("json"),
		Message:          aws.String(payload),
		TargetArn:        aws.String(endpoint),
	})
	return err
}

// snsPayload builds the structured publish body. With MessageStructure
// "json", SNS wants each protocol key to carry a JSON-encoded string,
// so the GCM envelope is marshalled separately and embedded as text.
func snsPayload(msg Message) (string, error) {
	gcm, err := json.Marshal(map[string]any{
		"notification": map[string]string{
			"title": msg.Title,
			"body":  msg.Body,
		},
		"data": msg.Data,
	})
	if err != nil {
		return "", err
	}

	raw, err := json.Marshal(map[string]string{
		"default": msg.Body,
		"GCM":     string(gcm),
	})
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
