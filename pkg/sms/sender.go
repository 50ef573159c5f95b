package sms

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// snsClient is the part of *sns.Client the sender uses.
type snsClient interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// Sender delivers SMS messages through AWS SNS direct publish.
type Sender struct {
	client snsClient
	config Config
}

// Config holds SNS configuration for SMS delivery.
type Config struct {
	Region   string `env:"SMS_AWS_REGION,required"`
	SenderID string `env:"SMS_SENDER_ID"`
	// SMSType is "Transactional" or "Promotional"; transactional routes
	// get higher delivery reliability at higher cost.
	SMSType string `env:"SMS_TYPE" envDefault:"Transactional"`
}

// New creates an SNS-backed SMS sender using the default AWS credential
// chain.
func New(ctx context.Context, cfg Config) (*Sender, error) {
	if cfg.Region == "" {
		return nil, fmt.Errorf("%w: Region is required", ErrInvalidConfig)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, errors.Join(ErrInitFailed, err)
	}

	return &Sender{client: sns.NewFromConfig(awsCfg), config: cfg}, nil
}

// NewFromClient creates a sender around an existing SNS client.
// Intended for tests.
func NewFromClient(client snsClient, cfg Config) *Sender {
	return &Sender{client: client, config: cfg}
}

// SendSMS publishes one message directly to a phone number in E.164 format.
func (s *Sender) SendSMS(ctx context.Context, phoneNumber, body string) error {
	if phoneNumber == "" {
		return fmt.Errorf("%w: empty phone number", ErrSendFailed)
	}
	if body == "" {
		return fmt.Errorf("%w: empty body", ErrSendFailed)
	}

	attrs := map[string]types.MessageAttributeValue{
		"AWS.SNS.SMS.SMSType": {
			DataType:    aws.String("String"),
			StringValue: aws.String(s.config.SMSType),
		},
	}
	if s.config.SenderID != "" {
		attrs["AWS.SNS.SMS.SenderID"] = types.MessageAttributeValue{
			DataType:    aws.String("String"),
			StringValue: aws.String(s.config.SenderID),
		}
	}

	_, err := s.client.Publish(ctx, &sns.PublishInput{
		PhoneNumber:       aws.String(phoneNumber),
		Message:           aws.String(body),
		MessageAttributes: attrs,
	})
	if err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}
