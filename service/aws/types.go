package awsadapter

import (
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

type service struct {
	region    string
	ec2Client *ec2.Client
	rdsClient *rds.Client
	s3Client  *s3.Client
	stsClient *sts.Client
}
